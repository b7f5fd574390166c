package seed

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dshills/superheroes/internal/hero"
)

var validate = validator.New()

// file is the on-disk shape of a seed file.
type file struct {
	Heroes []entry `yaml:"heroes" validate:"required,min=1,max=50,dive"`
}

type entry struct {
	Name           string `yaml:"name" validate:"required"`
	Power          string `yaml:"power"`
	Weakness       string `yaml:"weakness"`
	YearIntroduced string `yaml:"year_introduced"`
	Universe       string `yaml:"universe"`
	Rank           int    `yaml:"rank"`
}

// Load reads a YAML seed file. Rank uniqueness is left to the store, which
// rejects duplicates when the seed is inserted.
func Load(path string) ([]hero.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates seed YAML.
func Parse(data []byte) ([]hero.Record, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing seed YAML: %w", err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("validating seed: %w", err)
	}

	records := make([]hero.Record, 0, len(f.Heroes))
	for _, e := range f.Heroes {
		records = append(records, hero.Record{
			Details: hero.Details{
				Name:           e.Name,
				Power:          e.Power,
				Weakness:       e.Weakness,
				YearIntroduced: e.YearIntroduced,
				Universe:       e.Universe,
			},
			Rank: e.Rank,
		})
	}
	return records, nil
}
