package model

import (
	"math"

	"go.uber.org/multierr"
)

// InitialLevel is the starting value of every asset and liability index.
const InitialLevel = 100.0

// MaxSteps bounds the number of time steps in one run.
const MaxSteps = 100_000

// DefaultSeed seeds the shock generator when no seed is configured.
const DefaultSeed uint64 = 42

// Params is the immutable configuration of one simulation run.
// Units:
// - HorizonYears, StepYears: years
// - MeanReversion: per year
// - RateVolatility, asset Volatility: annualized
// - curve rates and Premium: annualized decimals (0.045 = 4.5%)
type Params struct {
	HorizonYears float64
	StepYears    float64
	Scenarios    int

	// Hull-White one-factor parameters.
	MeanReversion  float64
	RateVolatility float64

	// Market instantaneous forward curve f(0, t).
	CurveTenors []float64
	CurveRates  []float64

	Domestic AssetParams
	Global   AssetParams
	Housing  AssetParams

	// DomesticWeight is w_D; the global weight is 1 - w_D.
	DomesticWeight float64

	// Correlation in factor order {rate, domestic, global, housing}.
	Correlation [NumFactors][NumFactors]float64

	Seed uint64
}

// DefaultParams returns the documented default parameter set:
// a three-year monthly simulation against an inverted curve (4.35% -> 3.5%).
func DefaultParams() Params {
	return Params{
		HorizonYears:   3,
		StepYears:      1.0 / 12,
		Scenarios:      2000,
		MeanReversion:  0.3,
		RateVolatility: 0.015,
		CurveTenors:    []float64{0, 1, 2, 3, 5},
		CurveRates:     []float64{0.0435, 0.040, 0.038, 0.035, 0.035},
		Domestic:       AssetParams{Premium: 0.045, Volatility: 0.18},
		Global:         AssetParams{Premium: 0.045, Volatility: 0.15},
		Housing:        AssetParams{Premium: 0.020, Volatility: 0.10},
		DomesticWeight: 0.5,
		Correlation: [NumFactors][NumFactors]float64{
			{1.0, -0.4, -0.1, -0.6},
			{-0.4, 1.0, 0.6, 0.4},
			{-0.1, 0.6, 1.0, 0.1},
			{-0.6, 0.4, 0.1, 1.0},
		},
		Seed: DefaultSeed,
	}
}

// GlobalWeight is 1 - DomesticWeight.
func (p Params) GlobalWeight() float64 {
	return 1 - p.DomesticWeight
}

// Steps is the number of time steps, horizon/step truncated.
// A small tolerance keeps e.g. 3 / (1/12) at 36 despite rounding.
func (p Params) Steps() int {
	return int(math.Floor(p.HorizonYears/p.StepYears + 1e-9))
}

// Asset returns the parameters of one asset leg.
func (p Params) Asset(a Asset) AssetParams {
	switch a {
	case AssetDomesticEquity:
		return p.Domestic
	case AssetGlobalEquity:
		return p.Global
	case AssetHousing:
		return p.Housing
	default:
		panic(unknownAsset(a))
	}
}

// CorrelationRows returns the correlation matrix as row slices.
func (p Params) CorrelationRows() [][]float64 {
	rows := make([][]float64, NumFactors)
	for i := range rows {
		rows[i] = make([]float64, NumFactors)
		copy(rows[i], p.Correlation[i][:])
	}
	return rows
}

// WithDomesticWeight returns a copy with w_D replaced.
func (p Params) WithDomesticWeight(w float64) Params {
	p.DomesticWeight = w
	p.CurveTenors = append([]float64(nil), p.CurveTenors...)
	p.CurveRates = append([]float64(nil), p.CurveRates...)
	return p
}

// Validate reports every invalid parameter. Each reported error wraps
// ErrInvalidParameter and names the offending field.
// The forward curve shape and the positive definiteness of the correlation
// matrix are checked by their own components.
func (p Params) Validate() error {
	var errs error
	if !finite(p.HorizonYears) || p.HorizonYears <= 0 {
		errs = multierr.Append(errs, invalid("horizon_years", "must be > 0, got %v", p.HorizonYears))
	}
	if !finite(p.StepYears) || p.StepYears <= 0 {
		errs = multierr.Append(errs, invalid("step_years", "must be > 0, got %v", p.StepYears))
	} else if p.StepYears > p.HorizonYears {
		errs = multierr.Append(errs, invalid("step_years", "must not exceed horizon_years (%v > %v)", p.StepYears, p.HorizonYears))
	} else if n := p.HorizonYears / p.StepYears; !finite(n) || n > MaxSteps+1e-9 {
		errs = multierr.Append(errs, invalid("step_years", "horizon_years/step_years must be at most %d, got %v", MaxSteps, n))
	}
	if p.Scenarios <= 0 {
		errs = multierr.Append(errs, invalid("scenarios", "must be > 0, got %d", p.Scenarios))
	}
	if !finite(p.MeanReversion) || p.MeanReversion <= 0 {
		errs = multierr.Append(errs, invalid("mean_reversion", "must be > 0, got %v", p.MeanReversion))
	}
	if !finite(p.RateVolatility) || p.RateVolatility < 0 {
		errs = multierr.Append(errs, invalid("rate_volatility", "must be >= 0, got %v", p.RateVolatility))
	}
	for _, a := range Assets {
		ap := p.Asset(a)
		if !finite(ap.Premium) {
			errs = multierr.Append(errs, invalid(string(a)+".premium", "must be finite, got %v", ap.Premium))
		}
		if !finite(ap.Volatility) || ap.Volatility < 0 {
			errs = multierr.Append(errs, invalid(string(a)+".volatility", "must be >= 0, got %v", ap.Volatility))
		}
	}
	if !finite(p.DomesticWeight) || p.DomesticWeight < 0 || p.DomesticWeight > 1 {
		errs = multierr.Append(errs, invalid("domestic_weight", "must be in [0, 1], got %v", p.DomesticWeight))
	}
	errs = multierr.Append(errs, p.validateCorrelation())
	return errs
}

func (p Params) validateCorrelation() error {
	var errs error
	for i := 0; i < NumFactors; i++ {
		if p.Correlation[i][i] != 1 {
			errs = multierr.Append(errs, invalid("correlation", "diagonal (%d,%d) must be 1, got %v", i, i, p.Correlation[i][i]))
		}
		for j := i + 1; j < NumFactors; j++ {
			v := p.Correlation[i][j]
			if !finite(v) || v < -1 || v > 1 {
				errs = multierr.Append(errs, invalid("correlation", "(%d,%d) must be in [-1, 1], got %v", i, j, v))
			}
			if v != p.Correlation[j][i] {
				errs = multierr.Append(errs, invalid("correlation", "not symmetric at (%d,%d): %v != %v", i, j, v, p.Correlation[j][i]))
			}
		}
	}
	return errs
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
