package simulation

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"funding-sim/internal/correlation"
	"funding-sim/internal/curve"
	"funding-sim/internal/model"
)

var log = logrus.WithField("component", "simulation")

// Engine runs funding-ratio simulations. It holds no state between runs, so
// independent runs may execute concurrently.
type Engine struct{}

func New() *Engine { return &Engine{} }

// setup holds everything built from Params before the first time step.
type setup struct {
	steps int
	rates HullWhite
	corr  *correlation.Engine
	legs  []AssetLeg
}

func prepare(params model.Params) (*setup, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("parameters: %w", err)
	}
	fwd, err := curve.New(params.CurveTenors, params.CurveRates)
	if err != nil {
		return nil, fmt.Errorf("forward curve: %w", err)
	}
	corr, err := correlation.NewFromRows(params.CorrelationRows())
	if err != nil {
		return nil, fmt.Errorf("correlation: %w", err)
	}

	legs := make([]AssetLeg, len(model.Assets))
	for i, a := range model.Assets {
		legs[i] = newAssetLeg(a, params.Asset(a))
	}
	return &setup{
		steps: params.Steps(),
		rates: HullWhite{
			Curve:          fwd,
			MeanReversion:  params.MeanReversion,
			RateVolatility: params.RateVolatility,
		},
		corr: corr,
		legs: legs,
	}, nil
}

// Run validates params, builds the curve and correlation factor, then steps
// every scenario through the horizon. Setup errors are returned before any
// time-stepping; numeric faults during stepping are not checked and show up
// as non-finite funding ratios.
func (e *Engine) Run(params model.Params) (*Result, error) {
	s, err := prepare(params)
	if err != nil {
		return nil, err
	}

	n, steps := params.Scenarios, s.steps
	dt := params.StepYears
	log.Debugf("running %d scenarios x %d steps (dt=%.6f, seed=%d)", n, steps, dt, params.Seed)

	paths := newPaths(n, steps+1)
	grid := timeGrid(params.HorizonYears, steps)

	// state vectors for the current and next time slice
	rate := make([]float64, n)
	rateNext := make([]float64, n)
	levels := make([][]float64, len(s.legs))
	levelsNext := make([][]float64, len(s.legs))

	r0 := s.rates.Curve.Rate(0)
	for i := 0; i < n; i++ {
		rate[i] = r0
	}
	paths.Rate.SetCol(0, rate)
	for j, leg := range s.legs {
		levels[j] = make([]float64, n)
		levelsNext[j] = make([]float64, n)
		for i := range levels[j] {
			levels[j][i] = model.InitialLevel
		}
		paths.Of(leg.Asset).SetCol(0, levels[j])
	}

	shocks := newShockSource(s.corr, n, dt, params.Seed)
	for k := 0; k < steps; k++ {
		t := grid[k]
		dw := shocks.next()

		s.rates.Step(rateNext, rate, dw[model.FactorRate], t, dt)
		// assets drift on the pre-step rate, so rate is read before it is swapped
		for j, leg := range s.legs {
			leg.Step(levelsNext[j], levels[j], rate, dw[leg.Asset.Factor()], dt)
		}

		rate, rateNext = rateNext, rate
		paths.Rate.SetCol(k+1, rate)
		for j, leg := range s.legs {
			levels[j], levelsNext[j] = levelsNext[j], levels[j]
			paths.Of(leg.Asset).SetCol(k+1, levels[j])
		}
	}

	res := &Result{
		Params:   params,
		TimeGrid: grid,
		Paths:    paths,
	}
	res.FundingRatios = FundingRatios(
		res.Terminal(model.AssetDomesticEquity),
		res.Terminal(model.AssetGlobalEquity),
		res.Terminal(model.AssetHousing),
		params.DomesticWeight,
	)
	log.Debugf("finished %d scenarios, mean funding ratio %.4f", n, stat.Mean(res.FundingRatios, nil))
	return res, nil
}

// Simulate runs a single simulation and returns only the funding ratios.
func Simulate(params model.Params) ([]float64, error) {
	res, err := New().Run(params)
	if err != nil {
		return nil, err
	}
	return res.FundingRatios, nil
}

// Check reports setup errors for params without simulating.
func Check(params model.Params) error {
	_, err := prepare(params)
	return err
}

// timeGrid spreads steps+1 evenly spaced points over [0, horizon]. When the
// step does not divide the horizon the spacing differs slightly from the step
// size; the rate and asset updates still advance by the step size.
func timeGrid(horizon float64, steps int) []float64 {
	grid := make([]float64, steps+1)
	for k := range grid {
		grid[k] = horizon * float64(k) / float64(steps)
	}
	grid[steps] = horizon
	return grid
}

func newPaths(scenarios, columns int) Paths {
	return Paths{
		Rate:     mat.NewDense(scenarios, columns, nil),
		Domestic: mat.NewDense(scenarios, columns, nil),
		Global:   mat.NewDense(scenarios, columns, nil),
		Housing:  mat.NewDense(scenarios, columns, nil),
	}
}
