package analysis

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderTable writes summaries as a rounded text table, one row per summary.
func RenderTable(w io.Writer, title string, summaries []Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	if title != "" {
		t.SetTitle(title)
	}
	t.AppendHeader(table.Row{"strategy", "scenarios", "mean", "std dev", "p05", "p50", "p95", "min", "max", "P(FR<1)", "non-finite"})

	var cols []table.ColumnConfig
	for n := 2; n <= 11; n++ {
		cols = append(cols, table.ColumnConfig{Number: n, Align: text.AlignRight})
	}
	t.SetColumnConfigs(cols)

	for _, s := range summaries {
		t.AppendRow(table.Row{
			s.Label,
			s.Count,
			fmt.Sprintf("%.4f", s.Mean),
			fmt.Sprintf("%.4f", s.StdDev),
			fmt.Sprintf("%.4f", s.P05),
			fmt.Sprintf("%.4f", s.P50),
			fmt.Sprintf("%.4f", s.P95),
			fmt.Sprintf("%.4f", s.Min),
			fmt.Sprintf("%.4f", s.Max),
			fmt.Sprintf("%.1f%%", 100*s.ShortfallProbability),
			s.NonFinite,
		})
	}
	t.Render()
}
