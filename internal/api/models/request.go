package models

import (
	"funding-sim/internal/strategy"
)

// SimulationRequest represents the request body for running a simulation.
// Every field is optional; omitted values fall back to the documented defaults.
type SimulationRequest struct {
	CurveID    string            `json:"curve_id,omitempty"`   // preset from the curve directory
	Allocation string            `json:"allocation,omitempty"` // preset name, e.g. "balanced"
	Params     ParamsInput       `json:"params,omitempty"`
	Options    SimulationOptions `json:"options,omitempty"`
}

// ParamsInput overrides individual simulation parameters.
// Pointers distinguish "not provided" from an explicit zero.
type ParamsInput struct {
	HorizonYears   *float64    `json:"horizon_years,omitempty"`
	StepYears      *float64    `json:"step_years,omitempty"`
	Scenarios      *int        `json:"scenarios,omitempty"`
	Seed           *uint64     `json:"seed,omitempty"`
	MeanReversion  *float64    `json:"mean_reversion,omitempty"`
	RateVolatility *float64    `json:"rate_volatility,omitempty"`
	Curve          *CurveInput `json:"curve,omitempty"`
	DomesticEquity *AssetInput `json:"domestic_equity,omitempty"`
	GlobalEquity   *AssetInput `json:"global_equity,omitempty"`
	Housing        *AssetInput `json:"housing,omitempty"`
	DomesticWeight *float64    `json:"domestic_weight,omitempty"`
	Correlation    [][]float64 `json:"correlation,omitempty"`
}

// CurveInput is an inline forward curve.
type CurveInput struct {
	Tenors []float64 `json:"tenors" binding:"required"`
	Rates  []float64 `json:"rates" binding:"required"`
}

// AssetInput overrides one asset's premium and volatility.
type AssetInput struct {
	Premium    *float64 `json:"premium,omitempty"`
	Volatility *float64 `json:"volatility,omitempty"`
}

// SimulationOptions contains optional response parameters
type SimulationOptions struct {
	IncludeSamples bool `json:"include_samples,omitempty"` // default: false
}

// CompareRequest represents a request to compare allocations on the same shocks.
// With no allocations the 50/50 vs fully global comparison is run.
type CompareRequest struct {
	Base        SimulationRequest     `json:"base"`
	Allocations []strategy.Allocation `json:"allocations,omitempty"`
}
