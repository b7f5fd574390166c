package hero

import (
	"fmt"
	"strconv"
)

// Details holds the descriptive fields of a superhero, everything except rank.
type Details struct {
	Name           string `json:"name"`
	Power          string `json:"power"`
	Weakness       string `json:"weakness"`
	YearIntroduced string `json:"year_introduced"` // never parsed as a number
	Universe       string `json:"universe"`        // expected Marvel, DC or Other; not enforced
}

// Record is one catalog entry. The six fields always move together.
type Record struct {
	Details
	Rank int `json:"rank"`
}

// Field selects a searchable text field.
type Field string

const (
	FieldName  Field = "name"
	FieldPower Field = "power"
)

// ParseField converts a flag or menu value to a Field.
func ParseField(s string) (Field, error) {
	switch Field(s) {
	case FieldName, FieldPower:
		return Field(s), nil
	default:
		return "", fmt.Errorf("unknown field %q: supported fields are name, power", s)
	}
}

// Value returns the text of the selected field.
func (r Record) Value(f Field) string {
	if f == FieldPower {
		return r.Power
	}
	return r.Name
}

// CaseMode controls how the free-text fields are displayed.
type CaseMode string

const (
	CaseUpper     CaseMode = "upper"
	CaseLower     CaseMode = "lower"
	CaseAsEntered CaseMode = "as-entered"
)

// ParseCaseMode converts a flag or config value to a CaseMode.
func ParseCaseMode(s string) (CaseMode, error) {
	switch CaseMode(s) {
	case CaseUpper, CaseLower, CaseAsEntered:
		return CaseMode(s), nil
	default:
		return "", fmt.Errorf("unknown case mode %q: supported modes are upper, lower, as-entered", s)
	}
}

func (m CaseMode) apply(s string) string {
	switch m {
	case CaseUpper:
		return ToUpper(s)
	case CaseLower:
		return ToLower(s)
	default:
		return s
	}
}

// View is the display form of a Record. Every field is text.
type View struct {
	Name           string `json:"name"`
	Power          string `json:"power"`
	Weakness       string `json:"weakness"`
	YearIntroduced string `json:"year_introduced"`
	Universe       string `json:"universe"`
	Rank           string `json:"rank"`
}

// Render projects r for display. The case mode touches name, power and
// weakness only; year and universe are copied as stored.
func Render(r Record, mode CaseMode) View {
	return View{
		Name:           mode.apply(r.Name),
		Power:          mode.apply(r.Power),
		Weakness:       mode.apply(r.Weakness),
		YearIntroduced: r.YearIntroduced,
		Universe:       r.Universe,
		Rank:           strconv.Itoa(r.Rank),
	}
}

// RenderAll renders records in order.
func RenderAll(records []Record, mode CaseMode) []View {
	views := make([]View, 0, len(records))
	for _, r := range records {
		views = append(views, Render(r, mode))
	}
	return views
}

// Universe labels used by the seed data and the tally.
const (
	UniverseMarvel = "Marvel"
	UniverseDC     = "DC"
	UniverseOther  = "Other"
)

// CountByUniverse tallies records by universe. Anything that is not Marvel or
// DC, compared without case, counts as other.
func CountByUniverse(records []Record) (marvel, dc, other int) {
	for _, r := range records {
		switch {
		case CompareFold(r.Universe, UniverseMarvel) == 0:
			marvel++
		case CompareFold(r.Universe, UniverseDC) == 0:
			dc++
		default:
			other++
		}
	}
	return
}
