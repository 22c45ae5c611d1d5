package curve

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	marketTenors = []float64{0, 1, 2, 3, 5}
	marketRates  = []float64{0.0435, 0.040, 0.038, 0.035, 0.035}
)

func TestForwardCurve_ExactAtPillars(t *testing.T) {
	c, err := New(marketTenors, marketRates)
	require.NoError(t, err)

	for i, tenor := range marketTenors {
		assert.InDelta(t, marketRates[i], c.Rate(tenor), 1e-15, "tenor %v", tenor)
	}
}

func TestForwardCurve_Interpolation(t *testing.T) {
	c, err := New(marketTenors, marketRates)
	require.NoError(t, err)

	assert.InDelta(t, (0.0435+0.040)/2, c.Rate(0.5), 1e-15)
	assert.InDelta(t, 0.038+(0.035-0.038)*0.25, c.Rate(2.25), 1e-15)
	assert.InDelta(t, 0.035, c.Rate(4), 1e-15)
}

func TestForwardCurve_ExtrapolatesBoundarySlope(t *testing.T) {
	c, err := New([]float64{0, 1, 2}, []float64{0.02, 0.03, 0.05})
	require.NoError(t, err)

	// left segment slope is 0.01 per year
	assert.InDelta(t, 0.015, c.Rate(-0.5), 1e-15)
	// right segment slope is 0.02 per year, not flat
	assert.InDelta(t, 0.07, c.Rate(3), 1e-15)
	assert.InDelta(t, 0.11, c.Rate(5), 1e-15)
}

func TestForwardCurve_SlopeAtClosePoints(t *testing.T) {
	c, err := New([]float64{0, 1, 2}, []float64{0.02, 0.03, 0.05})
	require.NoError(t, err)

	assert.InDelta(t, 0.01, c.Slope(0.3, 1e-6), 1e-8)
	assert.InDelta(t, 0.02, c.Slope(1.5, 1e-6), 1e-8)
	assert.InDelta(t, 0.02, c.Slope(10, 1.0/12), 1e-12)

	// a step straddling a pillar averages the two segments
	assert.InDelta(t, 0.015, c.Slope(0.5, 1), 1e-12)
}

func TestForwardCurve_FlatCurve(t *testing.T) {
	c, err := New([]float64{0, 10}, []float64{0.03, 0.03})
	require.NoError(t, err)

	for _, x := range []float64{0, 0.1, 5, 10, 25} {
		assert.Equal(t, 0.03, c.Rate(x))
		assert.Equal(t, 0.0, c.Slope(x, 1.0/12))
	}
}

func TestForwardCurve_DoesNotAliasInput(t *testing.T) {
	tenors := []float64{0, 1}
	rates := []float64{0.01, 0.02}
	c, err := New(tenors, rates)
	require.NoError(t, err)

	rates[1] = 0.5
	assert.InDelta(t, 0.02, c.Rate(1), 1e-15)

	pts := c.Points()
	pts[0].Rate = 9
	assert.InDelta(t, 0.01, c.Rate(0), 1e-15)
	assert.Equal(t, 1.0, c.MaxTenor())

	ts, rs := c.Pillars()
	assert.Equal(t, []float64{0, 1}, ts)
	assert.Equal(t, []float64{0.01, 0.02}, rs)
	rs[0] = 9
	assert.InDelta(t, 0.01, c.Rate(0), 1e-15)
}

func TestFromPoints(t *testing.T) {
	c, err := FromPoints([]Point{{0, 0.01}, {2, 0.03}})
	require.NoError(t, err)
	assert.InDelta(t, 0.02, c.Rate(1), 1e-15)
}

func TestNew_InvalidCurve(t *testing.T) {
	tests := []struct {
		name   string
		tenors []float64
		rates  []float64
	}{
		{name: "mismatched lengths", tenors: []float64{0, 1, 2}, rates: []float64{0.01, 0.02}},
		{name: "single point", tenors: []float64{0}, rates: []float64{0.01}},
		{name: "empty", tenors: nil, rates: nil},
		{name: "not increasing", tenors: []float64{0, 2, 1}, rates: []float64{0.01, 0.02, 0.03}},
		{name: "duplicate tenor", tenors: []float64{0, 1, 1}, rates: []float64{0.01, 0.02, 0.03}},
		{name: "does not start at zero", tenors: []float64{0.5, 1}, rates: []float64{0.01, 0.02}},
		{name: "nan rate", tenors: []float64{0, 1}, rates: []float64{0.01, math.NaN()}},
		{name: "infinite tenor", tenors: []float64{0, math.Inf(1)}, rates: []float64{0.01, 0.02}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.tenors, tt.rates)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, ErrInvalidCurve), "got %v", err)
		})
	}
}
