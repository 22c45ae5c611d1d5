package strategy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"funding-sim/internal/analysis"
	"funding-sim/internal/curve"
	"funding-sim/internal/model"
	"funding-sim/internal/simulation"
)

func smallParams() model.Params {
	p := model.DefaultParams()
	p.Scenarios = 300
	return p
}

func TestCompare_MatchesSequentialRuns(t *testing.T) {
	base := smallParams()
	allocs := Presets()

	outcomes, err := Compare(context.Background(), base, allocs)
	require.NoError(t, err)
	require.Len(t, outcomes, len(allocs))

	for i, a := range allocs {
		want, err := simulation.Simulate(base.WithDomesticWeight(a.DomesticWeight))
		require.NoError(t, err)

		assert.Equal(t, a, outcomes[i].Allocation)
		assert.Equal(t, want, outcomes[i].FundingRatios, a.Name)
		assert.Equal(t, a.Name, outcomes[i].Summary.Label)
		assert.InDelta(t, analysis.Summarize(want).StdDev, outcomes[i].Summary.StdDev, 1e-15)
	}
}

func TestCompare_DoesNotMutateBase(t *testing.T) {
	base := smallParams()
	tenors := append([]float64(nil), base.CurveTenors...)

	_, err := Compare(context.Background(), base, DemoAllocations())
	require.NoError(t, err)

	assert.Equal(t, 0.5, base.DomesticWeight)
	assert.Equal(t, tenors, base.CurveTenors)
}

func TestCompare_SameWeightSameOutcome(t *testing.T) {
	outcomes, err := Compare(context.Background(), smallParams(), []Allocation{
		{Name: "a", DomesticWeight: 0.3},
		{Name: "b", DomesticWeight: 0.3},
	})
	require.NoError(t, err)
	assert.Equal(t, outcomes[0].FundingRatios, outcomes[1].FundingRatios)
}

func TestCompare_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := Compare(ctx, smallParams(), nil)
	assert.Error(t, err)

	_, err = Compare(ctx, smallParams(), []Allocation{{Name: "bad", DomesticWeight: 1.5}})
	assert.True(t, errors.Is(err, model.ErrInvalidParameter))

	_, err = Compare(ctx, smallParams(), []Allocation{{Name: "x", DomesticWeight: 0.1}, {Name: "x", DomesticWeight: 0.2}})
	assert.ErrorContains(t, err, "duplicate allocation")

	p := smallParams()
	p.CurveTenors = []float64{1, 2, 3, 4, 5}
	_, err = Compare(ctx, p, DemoAllocations())
	assert.True(t, errors.Is(err, curve.ErrInvalidCurve), "got %v", err)
}

func TestCompare_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Compare(ctx, smallParams(), DemoAllocations())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPresets(t *testing.T) {
	presets := Presets()
	require.Len(t, presets, 3)
	assert.Equal(t, "balanced", presets[0].Name)
	assert.Equal(t, "domestic", presets[1].Name)
	assert.Equal(t, "global", presets[2].Name)

	a, err := Lookup(" Global ")
	require.NoError(t, err)
	assert.Equal(t, 0.0, a.DomesticWeight)
	assert.Equal(t, 1.0, a.GlobalWeight())

	_, err = Lookup("leveraged")
	assert.Error(t, err)

	demo := DemoAllocations()
	assert.Equal(t, []float64{0.5, 0}, []float64{demo[0].DomesticWeight, demo[1].DomesticWeight})
}
