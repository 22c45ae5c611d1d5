package strategy

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"funding-sim/internal/analysis"
	"funding-sim/internal/model"
	"funding-sim/internal/simulation"
)

var log = logrus.WithField("component", "strategy")

// Outcome is one allocation's simulated distribution.
type Outcome struct {
	Allocation    Allocation
	FundingRatios []float64
	Summary       analysis.Summary
}

// Compare runs base once per allocation, overriding only the domestic weight.
// Every run keeps base.Seed, so all allocations see the same shocks and
// differences between outcomes come from the allocation alone.
// Outcomes are returned in allocation order.
func Compare(ctx context.Context, base model.Params, allocations []Allocation) ([]Outcome, error) {
	if len(allocations) == 0 {
		return nil, errors.New("no allocations to compare")
	}
	seen := make(map[string]bool, len(allocations))
	for _, a := range allocations {
		if err := a.Validate(); err != nil {
			return nil, err
		}
		if seen[a.Name] {
			return nil, fmt.Errorf("duplicate allocation: %s", a.Name)
		}
		seen[a.Name] = true
	}

	outcomes := make([]Outcome, len(allocations))
	g, ctx := errgroup.WithContext(ctx)
	for i, a := range allocations {
		i, a := i, a
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			log.Debugf("simulating allocation %s (w_D=%.2f)", a.Name, a.DomesticWeight)

			ratios, err := simulation.Simulate(base.WithDomesticWeight(a.DomesticWeight))
			if err != nil {
				return fmt.Errorf("allocation %s: %w", a.Name, err)
			}
			s := analysis.Summarize(ratios)
			s.Label = a.Name
			outcomes[i] = Outcome{Allocation: a, FundingRatios: ratios, Summary: s}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// Summaries extracts the summaries of outcomes, in order.
func Summaries(outcomes []Outcome) []analysis.Summary {
	out := make([]analysis.Summary, len(outcomes))
	for i, o := range outcomes {
		out[i] = o.Summary
	}
	return out
}
