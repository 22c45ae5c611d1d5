package model

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDefaultParams_Valid(t *testing.T) {
	p := DefaultParams()
	require.NoError(t, p.Validate())
	assert.Equal(t, 36, p.Steps())
	assert.InDelta(t, 0.5, p.GlobalWeight(), 1e-15)
}

func TestParams_Steps(t *testing.T) {
	tests := []struct {
		horizon, step float64
		want          int
	}{
		{3, 1.0 / 12, 36},
		{1, 0.1, 10},
		{10, 1.0 / 52, 520},
		{1, 0.3, 3},
		{2, 2, 1},
	}
	for _, tt := range tests {
		p := Params{HorizonYears: tt.horizon, StepYears: tt.step}
		assert.Equal(t, tt.want, p.Steps(), "horizon=%v step=%v", tt.horizon, tt.step)
	}
}

func TestParams_ValidateReportsEveryField(t *testing.T) {
	p := DefaultParams()
	p.MeanReversion = 0
	p.RateVolatility = -0.01
	p.DomesticWeight = 1.5
	p.Global.Volatility = math.NaN()
	p.Scenarios = 0

	err := p.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	var fields []string
	for _, e := range multierr.Errors(err) {
		var pe *ParamError
		require.True(t, errors.As(e, &pe), "unexpected error type %T", e)
		fields = append(fields, pe.Field)
	}
	assert.ElementsMatch(t, []string{
		"mean_reversion",
		"rate_volatility",
		"domestic_weight",
		"global_equity.volatility",
		"scenarios",
	}, fields)
}

func TestParams_ValidateAllowsZeroVolatility(t *testing.T) {
	p := DefaultParams()
	p.RateVolatility = 0
	p.Domestic.Volatility = 0
	p.Global.Volatility = 0
	p.Housing.Volatility = 0
	assert.NoError(t, p.Validate())
}

func TestParams_ValidateWeightBounds(t *testing.T) {
	for _, w := range []float64{0, 0.25, 1} {
		p := DefaultParams()
		p.DomesticWeight = w
		assert.NoError(t, p.Validate(), "w=%v", w)
	}
	for _, w := range []float64{-0.01, 1.01, math.Inf(1)} {
		p := DefaultParams()
		p.DomesticWeight = w
		assert.Error(t, p.Validate(), "w=%v", w)
	}
}

func TestParams_ValidateStep(t *testing.T) {
	p := DefaultParams()
	p.StepYears = 4
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step_years")
}

func TestParams_ValidateStepCount(t *testing.T) {
	tests := []struct {
		name          string
		horizon, step float64
	}{
		{"ratio overflows", 1e300, 1e-10},
		{"too many steps", 3, 1e-6},
		{"one past the limit", MaxSteps + 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			p.HorizonYears, p.StepYears = tt.horizon, tt.step

			var pe *ParamError
			require.True(t, errors.As(p.Validate(), &pe))
			assert.Equal(t, "step_years", pe.Field)
		})
	}

	p := DefaultParams()
	p.HorizonYears, p.StepYears = MaxSteps, 1
	require.NoError(t, p.Validate())
	assert.Equal(t, MaxSteps, p.Steps())
}

func TestParams_ValidateCorrelation(t *testing.T) {
	t.Run("asymmetric", func(t *testing.T) {
		p := DefaultParams()
		p.Correlation[0][1] = 0.2
		err := p.Validate()
		assert.True(t, errors.Is(err, ErrInvalidParameter))
		assert.Contains(t, err.Error(), "not symmetric")
	})
	t.Run("diagonal", func(t *testing.T) {
		p := DefaultParams()
		p.Correlation[2][2] = 0.9
		assert.Error(t, p.Validate())
	})
	t.Run("out of range", func(t *testing.T) {
		p := DefaultParams()
		p.Correlation[1][3] = 1.2
		p.Correlation[3][1] = 1.2
		assert.Error(t, p.Validate())
	})
}

func TestParams_WithDomesticWeightCopiesCurve(t *testing.T) {
	base := DefaultParams()
	p := base.WithDomesticWeight(0)
	p.CurveRates[0] = 1

	assert.Equal(t, 0.0, p.DomesticWeight)
	assert.Equal(t, 0.5, base.DomesticWeight)
	assert.Equal(t, 0.0435, base.CurveRates[0])
}

func TestAsset_Factor(t *testing.T) {
	assert.Equal(t, FactorDomesticEquity, AssetDomesticEquity.Factor())
	assert.Equal(t, FactorGlobalEquity, AssetGlobalEquity.Factor())
	assert.Equal(t, FactorHousing, AssetHousing.Factor())
	assert.Panics(t, func() { Asset("bonds").Factor() })
	assert.Panics(t, func() { DefaultParams().Asset("bonds") })

	p := DefaultParams()
	assert.Equal(t, p.Housing, p.Asset(AssetHousing))
	assert.Len(t, p.CorrelationRows(), NumFactors)
}
