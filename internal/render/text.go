package render

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/fatih/color"

	"github.com/dshills/superheroes/internal/hero"
)

type textRenderer struct {
	useColor bool
}

const separator = "-------------------------------------------"

var textTemplate = template.Must(template.New("heroes").Funcs(template.FuncMap{
	"label": func(s string) string { return s },
}).Parse(`{{ range . }}` + separator + `
{{ label "Name:" }}            {{ .Name }}
{{ label "Superpower:" }}      {{ .Power }}
{{ label "Weakness:" }}        {{ .Weakness }}
{{ label "Year Introduced:" }} {{ .YearIntroduced }}
{{ label "Comic Universe:" }}  {{ .Universe }}
{{ label "Ranking:" }}         {{ .Rank }}
{{ end }}`))

func (r *textRenderer) Render(views []hero.View) ([]byte, error) {
	label := func(s string) string { return s }
	if r.useColor {
		cyan := color.New(color.FgCyan, color.Bold)
		cyan.EnableColor()
		label = func(s string) string { return cyan.Sprint(s) }
	}

	tmpl, err := textTemplate.Clone()
	if err != nil {
		return nil, fmt.Errorf("cloning text template: %w", err)
	}
	tmpl.Funcs(template.FuncMap{"label": label})

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, views); err != nil {
		return nil, fmt.Errorf("rendering text: %w", err)
	}
	return buf.Bytes(), nil
}
