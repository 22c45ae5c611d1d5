package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"funding-sim/internal/analysis"
	"funding-sim/internal/data"
	"funding-sim/internal/simulation"
	"funding-sim/internal/strategy"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "run one simulation and summarize the funding ratio",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := loadParams()
		if err != nil {
			return err
		}
		applyRunFlags(cmd, &params)

		var label string
		if cmd.Flags().Changed("allocation") {
			a, err := strategy.Lookup(viper.GetString("allocation"))
			if err != nil {
				return err
			}
			params.DomesticWeight = a.DomesticWeight
			label = a.Name
		}
		if cmd.Flags().Changed("domestic-weight") {
			params.DomesticWeight = viper.GetFloat64("domestic-weight")
			label = ""
		}
		if label == "" {
			label = fmt.Sprintf("w_D=%.2f", params.DomesticWeight)
		}
		if path := viper.GetString("curve-json"); path != "" {
			fwd, err := data.LoadCurveJSON(path)
			if err != nil {
				return err
			}
			params.CurveTenors, params.CurveRates = fwd.Pillars()
		}

		res, err := simulation.New().Run(params)
		if err != nil {
			return err
		}

		s := analysis.Summarize(res.FundingRatios)
		s.Label = label
		analysis.RenderTable(cmd.OutOrStdout(), "Terminal funding ratio", []analysis.Summary{s})

		if out := viper.GetString("out"); out != "" {
			if err := ensureDir(out); err != nil {
				return err
			}
			if err := simulation.WriteSamplesCSV(out, res); err != nil {
				return err
			}
			logrus.Infof("wrote %d scenarios to %s", res.Scenarios(), out)
		}
		if out := viper.GetString("paths-out"); out != "" {
			if err := ensureDir(out); err != nil {
				return err
			}
			if err := simulation.WritePathsCSV(out, res); err != nil {
				return err
			}
			logrus.Infof("wrote %d x %d path rows to %s", res.Scenarios(), len(res.TimeGrid), out)
		}
		return nil
	},
}

func init() {
	addRunFlags(simulateCmd)
	simulateCmd.Flags().String("allocation", "balanced", "allocation preset (balanced, global, domestic)")
	simulateCmd.Flags().Float64("domestic-weight", 0.5, "domestic equity weight in [0,1] (overrides --allocation)")
	simulateCmd.Flags().String("curve-json", "", "forward curve JSON file (overrides config curve)")
	simulateCmd.Flags().String("out", "", "write per-scenario terminal values to this CSV")
	simulateCmd.Flags().String("paths-out", "", "write the full path grid to this CSV")
}

// ensure output dir exists
func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
