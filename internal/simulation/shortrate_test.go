package simulation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"funding-sim/internal/curve"
)

func TestHullWhite_Theta(t *testing.T) {
	fwd, err := curve.New([]float64{0, 10}, []float64{0.03, 0.03})
	require.NoError(t, err)

	hw := HullWhite{Curve: fwd, MeanReversion: 0.3, RateVolatility: 0.015}

	// flat curve: theta reduces to a·c plus the convexity correction
	assert.InDelta(t, 0.3*0.03, hw.Theta(0, 1.0/12), 1e-15)
	want := 0.3*0.03 + 0.015*0.015/(2*0.3)*(1-math.Exp(-2*0.3*2))
	assert.InDelta(t, want, hw.Theta(2, 1.0/12), 1e-15)
}

func TestHullWhite_ThetaFollowsSlope(t *testing.T) {
	fwd, err := curve.New([]float64{0, 1, 2}, []float64{0.04, 0.03, 0.03})
	require.NoError(t, err)

	hw := HullWhite{Curve: fwd, MeanReversion: 0.5, RateVolatility: 0}
	assert.InDelta(t, -0.01+0.5*0.035, hw.Theta(0.5, 0.1), 1e-12)
	assert.InDelta(t, 0.5*0.03, hw.Theta(1.5, 0.1), 1e-12)
}

func TestHullWhite_Alpha(t *testing.T) {
	fwd, err := curve.New([]float64{0, 10}, []float64{0.03, 0.03})
	require.NoError(t, err)

	hw := HullWhite{Curve: fwd, MeanReversion: 0.3, RateVolatility: 0.015}
	assert.Equal(t, 0.03, hw.Alpha(0))

	x := 1 - math.Exp(-0.3*3)
	assert.InDelta(t, 0.03+0.015*0.015/(2*0.09)*x*x, hw.Alpha(3), 1e-15)
}

func TestHullWhite_Step(t *testing.T) {
	fwd, err := curve.New([]float64{0, 10}, []float64{0.03, 0.03})
	require.NoError(t, err)

	hw := HullWhite{Curve: fwd, MeanReversion: 0.3, RateVolatility: 0.01}
	current := []float64{0.03, 0.05, 0.01}
	shock := []float64{0, 0.1, -0.1}
	next := make([]float64, 3)

	hw.Step(next, current, shock, 0, 0.25)

	theta := hw.Theta(0, 0.25)
	for i := range current {
		want := current[i] + (theta-0.3*current[i])*0.25 + 0.01*shock[i]
		assert.InDelta(t, want, next[i], 1e-15)
	}
	// mean reversion pulls toward the curve
	assert.Less(t, next[1]-0.01*shock[1], current[1])
	assert.Greater(t, next[2]-0.01*shock[2], current[2])
}

func TestAssetLeg_Step(t *testing.T) {
	leg := AssetLeg{Premium: 0.04, Volatility: 0.2}
	current := []float64{100, 50}
	rate := []float64{0.03, 0.01}
	shock := []float64{0.05, -0.02}
	next := make([]float64, 2)

	leg.Step(next, current, rate, shock, 0.5)

	for i := range current {
		want := current[i] * math.Exp((rate[i]+0.04-0.5*0.04)*0.5+0.2*shock[i])
		assert.InDelta(t, want, next[i], 1e-12)
	}
}

func TestFundingRatios(t *testing.T) {
	domestic := []float64{110, 90}
	global := []float64{100, 120}
	housing := []float64{100, 105}

	got := FundingRatios(domestic, global, housing, 0.25)
	assert.InDelta(t, (0.25*110+0.75*100)/100, got[0], 1e-15)
	assert.InDelta(t, (0.25*90+0.75*120)/105, got[1], 1e-15)

	assert.Equal(t, []float64{1.1, 90.0 / 105}, FundingRatios(domestic, global, housing, 1))
}

func TestFundingRatios_ZeroLiabilityIsNotGuarded(t *testing.T) {
	got := FundingRatios([]float64{100}, []float64{100}, []float64{0}, 0.5)
	assert.True(t, math.IsInf(got[0], 1))
}
