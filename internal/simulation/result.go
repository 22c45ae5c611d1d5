package simulation

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"funding-sim/internal/model"
)

// Paths holds one (scenario × time step) matrix per tracked quantity.
// Every matrix is a single contiguous row-major allocation with the same
// scenario count and time grid; column 0 is the deterministic initial state.
type Paths struct {
	Rate     *mat.Dense
	Domestic *mat.Dense
	Global   *mat.Dense
	Housing  *mat.Dense
}

// Of returns the level matrix of an asset.
func (p Paths) Of(a model.Asset) *mat.Dense {
	switch a {
	case model.AssetDomesticEquity:
		return p.Domestic
	case model.AssetGlobalEquity:
		return p.Global
	case model.AssetHousing:
		return p.Housing
	default:
		panic(fmt.Sprintf("simulation: unknown asset %q", string(a)))
	}
}

// Result holds the simulated paths and terminal funding ratios of one run,
// together with the parameters that produced them.
type Result struct {
	Params   model.Params
	TimeGrid []float64
	Paths    Paths

	// FundingRatios holds one terminal funding ratio per scenario, in scenario order.
	FundingRatios []float64
}

// Scenarios is the number of simulated scenarios.
func (r *Result) Scenarios() int {
	rows, _ := r.Paths.Rate.Dims()
	return rows
}

// Steps is the number of time steps (columns minus the initial state).
func (r *Result) Steps() int {
	return len(r.TimeGrid) - 1
}

// Terminal returns the last time slice of an asset's paths.
func (r *Result) Terminal(a model.Asset) []float64 {
	m := r.Paths.Of(a)
	_, cols := m.Dims()
	return mat.Col(nil, cols-1, m)
}

// TerminalRates returns the short rate of every scenario at the horizon.
func (r *Result) TerminalRates() []float64 {
	_, cols := r.Paths.Rate.Dims()
	return mat.Col(nil, cols-1, r.Paths.Rate)
}

// MeanRatePath is the cross-scenario average short rate at each grid point.
func (r *Result) MeanRatePath() []float64 {
	_, cols := r.Paths.Rate.Dims()
	out := make([]float64, cols)
	col := make([]float64, r.Scenarios())
	for k := range out {
		mat.Col(col, k, r.Paths.Rate)
		out[k] = stat.Mean(col, nil)
	}
	return out
}
