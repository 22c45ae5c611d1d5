package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"funding-sim/internal/data"
	"funding-sim/internal/model"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "print the effective simulation parameters",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadParams()
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"parameter", "value"})
		t.AppendRows([]table.Row{
			{"horizon_years", p.HorizonYears},
			{"step_years", fmt.Sprintf("%.6f", p.StepYears)},
			{"steps", p.Steps()},
			{"scenarios", p.Scenarios},
			{"seed", p.Seed},
			{"mean_reversion", p.MeanReversion},
			{"rate_volatility", p.RateVolatility},
			{"curve_tenors", fmt.Sprint(p.CurveTenors)},
			{"curve_rates", fmt.Sprint(p.CurveRates)},
		})
		for _, a := range model.Assets {
			ap := p.Asset(a)
			t.AppendRow(table.Row{string(a) + ".premium", ap.Premium})
			t.AppendRow(table.Row{string(a) + ".volatility", ap.Volatility})
		}
		t.AppendRow(table.Row{"domestic_weight", p.DomesticWeight})
		for i, row := range p.CorrelationRows() {
			t.AppendRow(table.Row{fmt.Sprintf("correlation[%d]", i), fmt.Sprint(row)})
		}
		t.Render()
		return nil
	},
}

var curvesCmd = &cobra.Command{
	Use:   "curves [dir]",
	Short: "list forward-curve presets (default examples/curves)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := ""
		if len(args) == 1 {
			dir = args[0]
		}
		presets, err := data.ListCurves(data.ResolveCurveDir(dir))
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"id", "name", "tenors", "rates", "description"})
		for _, p := range presets {
			t.AppendRow(table.Row{p.ID, p.Name, fmt.Sprint(p.Tenors), fmt.Sprint(p.Rates), p.Description})
		}
		t.Render()
		return nil
	},
}
