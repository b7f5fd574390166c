package render

import (
	"fmt"

	"github.com/dshills/superheroes/internal/hero"
)

// Renderer formats rendered records for output.
type Renderer interface {
	Render(views []hero.View) ([]byte, error)
}

// Text returns the labelled block renderer used when no format is chosen.
func Text(useColor bool) Renderer {
	return &textRenderer{useColor: useColor}
}

// NewRenderer returns a Renderer for the given format string.
// useColor only affects the text format.
func NewRenderer(format string, useColor bool) (Renderer, error) {
	switch format {
	case "text", "":
		return Text(useColor), nil
	case "table":
		return &tableRenderer{}, nil
	case "md":
		return &tableRenderer{markdown: true}, nil
	case "json":
		return &jsonRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q: supported formats are text, table, md, json", format)
	}
}
