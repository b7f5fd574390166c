package render

import (
	"encoding/json"

	"github.com/dshills/superheroes/internal/hero"
)

type jsonRenderer struct{}

func (r *jsonRenderer) Render(views []hero.View) ([]byte, error) {
	if views == nil {
		views = []hero.View{}
	}
	return json.MarshalIndent(views, "", "  ")
}
