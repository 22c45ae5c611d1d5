package main

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"funding-sim/internal/config"
	"funding-sim/internal/model"
)

var RootCmd = &cobra.Command{
	Use:   "cli",
	Short: "funding ratio simulator",
	Long:  "Monte Carlo simulation of a pension funding ratio under Hull-White rates and correlated asset returns.",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Once the flags are defined, we can bind config keys with flags.
		if err := viper.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
			return err
		}
		logrus.SetFormatter(&prefixed.TextFormatter{FullTimestamp: true})
		logrus.SetOutput(cmd.ErrOrStderr())
		if viper.GetBool("debug") {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.InfoLevel)
		}
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	RootCmd.PersistentFlags().String("config", "", "config file (e.g. examples/config.yaml)")

	RootCmd.AddCommand(simulateCmd, compareCmd, defaultsCmd, curvesCmd)
}

// loadParams returns the parameters from --config, or the defaults without one.
func loadParams() (model.Params, error) {
	path := viper.GetString("config")
	if path == "" {
		return model.DefaultParams(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return model.Params{}, err
	}
	return cfg.ToModelParams()
}

// applyRunFlags overrides params with the run flags the user actually set.
func applyRunFlags(cmd *cobra.Command, p *model.Params) {
	flags := cmd.Flags()
	if flags.Changed("scenarios") {
		p.Scenarios = viper.GetInt("scenarios")
	}
	if flags.Changed("seed") {
		p.Seed = viper.GetUint64("seed")
	}
	if flags.Changed("horizon") {
		p.HorizonYears = viper.GetFloat64("horizon")
	}
	if flags.Changed("step") {
		p.StepYears = viper.GetFloat64("step")
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Int("scenarios", 0, "number of scenarios (overrides config)")
	cmd.Flags().Uint64("seed", 0, "random seed (overrides config)")
	cmd.Flags().Float64("horizon", 0, "horizon in years (overrides config)")
	cmd.Flags().Float64("step", 0, "time step in years (overrides config)")
}

func bindFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}

func main() {
	viper.SetEnvPrefix("FUNDING_SIM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
