package handlers

import (
	"fmt"

	"funding-sim/internal/api/models"
	"funding-sim/internal/model"
)

// MaxScenarios caps the scenario count accepted over HTTP.
const MaxScenarios = 100_000

// MaxPathPoints caps scenarios x (steps+1) accepted over HTTP. Each point is
// stored once per tracked quantity.
const MaxPathPoints = 20_000_000

func applyAsset(dst *model.AssetParams, in *models.AssetInput) {
	if in == nil {
		return
	}
	if in.Premium != nil {
		dst.Premium = *in.Premium
	}
	if in.Volatility != nil {
		dst.Volatility = *in.Volatility
	}
}

// applyParams overlays the provided fields of in onto p.
func applyParams(p *model.Params, in models.ParamsInput) error {
	if in.HorizonYears != nil {
		p.HorizonYears = *in.HorizonYears
	}
	if in.StepYears != nil {
		p.StepYears = *in.StepYears
	}
	if in.Scenarios != nil {
		p.Scenarios = *in.Scenarios
	}
	if in.Seed != nil {
		p.Seed = *in.Seed
	}
	if in.MeanReversion != nil {
		p.MeanReversion = *in.MeanReversion
	}
	if in.RateVolatility != nil {
		p.RateVolatility = *in.RateVolatility
	}
	if in.Curve != nil {
		p.CurveTenors = append([]float64(nil), in.Curve.Tenors...)
		p.CurveRates = append([]float64(nil), in.Curve.Rates...)
	}
	applyAsset(&p.Domestic, in.DomesticEquity)
	applyAsset(&p.Global, in.GlobalEquity)
	applyAsset(&p.Housing, in.Housing)
	if in.DomesticWeight != nil {
		p.DomesticWeight = *in.DomesticWeight
	}

	if in.Correlation != nil {
		if len(in.Correlation) != model.NumFactors {
			return fmt.Errorf("correlation: %w", &model.ParamError{
				Field:  "correlation",
				Reason: fmt.Sprintf("must have %d rows, got %d", model.NumFactors, len(in.Correlation)),
			})
		}
		for i, row := range in.Correlation {
			if len(row) != model.NumFactors {
				return fmt.Errorf("correlation: %w", &model.ParamError{
					Field:  fmt.Sprintf("correlation[%d]", i),
					Reason: fmt.Sprintf("must have %d columns, got %d", model.NumFactors, len(row)),
				})
			}
			copy(p.Correlation[i][:], row)
		}
	}

	if p.Scenarios > MaxScenarios {
		return &model.ParamError{
			Field:  "scenarios",
			Reason: fmt.Sprintf("must be at most %d, got %d", MaxScenarios, p.Scenarios),
		}
	}
	// left to Validate when the step count itself is out of range
	if p.Scenarios > 0 && p.StepYears > 0 && p.HorizonYears > 0 {
		n := p.HorizonYears / p.StepYears
		if n <= model.MaxSteps+1e-9 && float64(p.Scenarios)*(n+1) > MaxPathPoints {
			reason := fmt.Sprintf("scenarios x (steps+1) must be at most %d, got %d x %d",
				MaxPathPoints, p.Scenarios, p.Steps()+1)
			return &model.ParamError{Field: "step_years", Reason: reason}
		}
	}
	return nil
}
