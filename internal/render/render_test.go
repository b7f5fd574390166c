package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dshills/superheroes/internal/hero"
)

func sampleViews() []hero.View {
	return []hero.View{
		{
			Name:           "krypto",
			Power:          "super strength, flight",
			Weakness:       "still has a dog's intelligence",
			YearIntroduced: "1955",
			Universe:       "DC",
			Rank:           "10",
		},
		{
			Name:           "skin",
			Power:          "has six extra feet of stretchable skin",
			Weakness:       "gray pallor, hygiene issues",
			YearIntroduced: "1994",
			Universe:       "Marvel",
			Rank:           "6",
		},
	}
}

func TestNewRenderer_Text(t *testing.T) {
	r, err := NewRenderer("text", false)
	if err != nil {
		t.Fatalf("NewRenderer text: %v", err)
	}
	out, err := r.Render(sampleViews())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	s := string(out)
	if strings.Count(s, separator) != 2 {
		t.Errorf("expected 2 separators, got output:\n%s", s)
	}
	for _, want := range []string{
		"Name:            krypto",
		"Superpower:      super strength, flight",
		"Year Introduced: 1955",
		"Comic Universe:  Marvel",
		"Ranking:         6",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("text output missing %q:\n%s", want, s)
		}
	}
	if strings.Contains(s, "\x1b[") {
		t.Errorf("unexpected escape codes with color disabled: %q", s)
	}
}

func TestNewRenderer_TextColor(t *testing.T) {
	r, err := NewRenderer("text", true)
	if err != nil {
		t.Fatalf("NewRenderer text: %v", err)
	}
	out, err := r.Render(sampleViews()[:1])
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "\x1b[") {
		t.Errorf("expected ANSI escape codes with color enabled: %q", s)
	}
	if !strings.Contains(s, "krypto") {
		t.Errorf("colored output lost the value: %q", s)
	}
}

func TestNewRenderer_TextEmpty(t *testing.T) {
	r, _ := NewRenderer("text", false)
	out, err := r.Render(nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected no output for no records, got %q", out)
	}
}

func TestNewRenderer_Table(t *testing.T) {
	r, err := NewRenderer("table", false)
	if err != nil {
		t.Fatalf("NewRenderer table: %v", err)
	}
	out, err := r.Render(sampleViews())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	s := string(out)
	for _, want := range []string{"Superpower", "krypto", "skin", "1994", "Marvel"} {
		if !strings.Contains(s, want) {
			t.Errorf("table output missing %q:\n%s", want, s)
		}
	}
}

func TestNewRenderer_Markdown(t *testing.T) {
	r, err := NewRenderer("md", false)
	if err != nil {
		t.Fatalf("NewRenderer md: %v", err)
	}
	out, err := r.Render(sampleViews())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "|") {
		t.Errorf("markdown output has no pipes: %q", s)
	}
	if !strings.Contains(s, "Ranking") || !strings.Contains(s, "krypto") {
		t.Errorf("markdown output missing header or row: %q", s)
	}
}

func TestNewRenderer_TableEmpty(t *testing.T) {
	r, _ := NewRenderer("table", false)
	out, err := r.Render(nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(out), "No superheroes") {
		t.Errorf("unexpected empty-table output: %q", out)
	}
}

func TestNewRenderer_JSON(t *testing.T) {
	r, err := NewRenderer("json", false)
	if err != nil {
		t.Fatalf("NewRenderer json: %v", err)
	}
	out, err := r.Render(sampleViews())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	var decoded []hero.View
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, out)
	}
	if len(decoded) != 2 || decoded[0].Rank != "10" {
		t.Errorf("decoded mismatch: %+v", decoded)
	}
}

func TestNewRenderer_JSONEmptyIsArray(t *testing.T) {
	r, _ := NewRenderer("json", false)
	out, err := r.Render(nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "[]" {
		t.Errorf("expected [], got %q", out)
	}
}

func TestText_MatchesTextFormat(t *testing.T) {
	r, err := NewRenderer("text", false)
	if err != nil {
		t.Fatalf("NewRenderer text: %v", err)
	}
	want, _ := r.Render(sampleViews())
	got, err := Text(false).Render(sampleViews())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("Text renderer differs from text format:\n%s\nvs\n%s", got, want)
	}
}

func TestNewRenderer_UnknownFormat(t *testing.T) {
	_, err := NewRenderer("xml", false)
	if err == nil {
		t.Error("expected error for unknown format, got nil")
	}
}
