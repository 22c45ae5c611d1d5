package models

import (
	"math"

	"funding-sim/internal/analysis"
	"funding-sim/internal/model"
)

// SimulationResponse represents the response from a simulation run
type SimulationResponse struct {
	ID      string           `json:"id,omitempty"`
	Status  string           `json:"status"`
	Params  ParamsView       `json:"params"`
	Summary analysis.Summary `json:"summary"`
	Samples []*float64       `json:"samples,omitempty"`
}

// SamplesResponse returns the cached funding ratios of a run
type SamplesResponse struct {
	ID      string     `json:"id"`
	Count   int        `json:"count"`
	Samples []*float64 `json:"samples"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one allocation
type ComparisonResult struct {
	Rank           int              `json:"rank"`
	Name           string           `json:"name"`
	DomesticWeight float64          `json:"domestic_weight"`
	Summary        analysis.Summary `json:"summary"`
}

// StrategyInfo represents information about an allocation preset
type StrategyInfo struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	DomesticWeight float64 `json:"domestic_weight"`
	GlobalWeight   float64 `json:"global_weight"`
}

// ParamsView is the JSON form of model.Params.
type ParamsView struct {
	HorizonYears   float64                   `json:"horizon_years"`
	StepYears      float64                   `json:"step_years"`
	Steps          int                       `json:"steps"`
	Scenarios      int                       `json:"scenarios"`
	Seed           uint64                    `json:"seed"`
	MeanReversion  float64                   `json:"mean_reversion"`
	RateVolatility float64                   `json:"rate_volatility"`
	CurveTenors    []float64                 `json:"curve_tenors"`
	CurveRates     []float64                 `json:"curve_rates"`
	Assets         map[model.Asset]AssetView `json:"assets"`
	DomesticWeight float64                   `json:"domestic_weight"`
	Correlation    [][]float64               `json:"correlation"`
	InitialLevel   float64                   `json:"initial_level"`
}

// AssetView is one asset's drift premium and volatility
type AssetView struct {
	Premium    float64 `json:"premium"`
	Volatility float64 `json:"volatility"`
}

func NewParamsView(p model.Params) ParamsView {
	assets := make(map[model.Asset]AssetView, len(model.Assets))
	for _, a := range model.Assets {
		ap := p.Asset(a)
		assets[a] = AssetView{Premium: ap.Premium, Volatility: ap.Volatility}
	}
	return ParamsView{
		HorizonYears:   p.HorizonYears,
		StepYears:      p.StepYears,
		Steps:          p.Steps(),
		Scenarios:      p.Scenarios,
		Seed:           p.Seed,
		MeanReversion:  p.MeanReversion,
		RateVolatility: p.RateVolatility,
		CurveTenors:    p.CurveTenors,
		CurveRates:     p.CurveRates,
		Assets:         assets,
		DomesticWeight: p.DomesticWeight,
		Correlation:    p.CorrelationRows(),
		InitialLevel:   model.InitialLevel,
	}
}

// NullableSamples maps non-finite samples to null, which JSON can carry.
func NullableSamples(xs []float64) []*float64 {
	out := make([]*float64, len(xs))
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) {
			continue
		}
		v := xs[i]
		out[i] = &v
	}
	return out
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInvalidCurve      = "INVALID_CURVE"
	CodeNonPSDCorrelation = "NON_PSD_CORRELATION"
	CodeInvalidParameter  = "INVALID_PARAMETER"
	CodeSimulationError   = "SIMULATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeInternalError     = "INTERNAL_ERROR"
)
