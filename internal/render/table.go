package render

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/dshills/superheroes/internal/hero"
)

var tableHeaders = []string{"Name", "Superpower", "Weakness", "Year", "Universe", "Ranking"}

// tableRenderer lays records out one per row, as a box table or as markdown.
type tableRenderer struct {
	markdown bool
}

func (r *tableRenderer) Render(views []hero.View) ([]byte, error) {
	if len(views) == 0 {
		return []byte("_No superheroes_\n"), nil
	}

	out := &strings.Builder{}
	opts := []tablewriter.Option{tablewriter.WithHeaderAutoFormat(tw.Off)}
	if r.markdown {
		alignment := make([]tw.Align, len(tableHeaders))
		for i := range alignment {
			alignment[i] = tw.AlignNone
		}
		opts = append(opts,
			tablewriter.WithRenderer(renderer.NewMarkdown()),
			tablewriter.WithAlignment(alignment),
		)
	}

	table := tablewriter.NewTable(out, opts...)
	table.Header(tableHeaders)
	for _, v := range views {
		row := []string{v.Name, v.Power, v.Weakness, v.YearIntroduced, v.Universe, v.Rank}
		if err := table.Append(row); err != nil {
			return nil, fmt.Errorf("appending row for %q: %w", v.Name, err)
		}
	}
	if err := table.Render(); err != nil {
		return nil, fmt.Errorf("rendering table: %w", err)
	}
	return []byte(out.String()), nil
}
