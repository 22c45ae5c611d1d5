package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"funding-sim/internal/analysis"
	"funding-sim/internal/strategy"
)

var compareCmd = &cobra.Command{
	Use:   "compare [preset|name=weight ...]",
	Short: "compare allocations on the same shocks, ranked by funding-ratio std dev",
	Long: `Compare runs one simulation per allocation with a shared seed.
Arguments are preset names (balanced, global, domestic) or name=weight pairs.
Without arguments the 50/50 and fully global allocations are compared.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := loadParams()
		if err != nil {
			return err
		}
		applyRunFlags(cmd, &params)

		allocs, err := parseAllocations(args)
		if err != nil {
			return err
		}

		outcomes, err := strategy.Compare(cmd.Context(), params, allocs)
		if err != nil {
			return err
		}
		ranked := analysis.RankByStdDev(strategy.Summaries(outcomes))
		analysis.RenderTable(cmd.OutOrStdout(), "Allocations ranked by funding-ratio std dev", ranked)
		return nil
	},
}

func init() {
	addRunFlags(compareCmd)
}

func parseAllocations(args []string) ([]strategy.Allocation, error) {
	if len(args) == 0 {
		return strategy.DemoAllocations(), nil
	}
	out := make([]strategy.Allocation, 0, len(args))
	for _, arg := range args {
		name, weight, ok := strings.Cut(arg, "=")
		if !ok {
			a, err := strategy.Lookup(arg)
			if err != nil {
				return nil, err
			}
			out = append(out, a)
			continue
		}
		w, err := strconv.ParseFloat(weight, 64)
		if err != nil {
			return nil, fmt.Errorf("allocation %q: invalid weight: %w", arg, err)
		}
		out = append(out, strategy.Allocation{Name: name, DomesticWeight: w})
	}
	return out, nil
}

