package handlers

import (
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"funding-sim/internal/analysis"
	"funding-sim/internal/api/metrics"
	"funding-sim/internal/api/models"
	"funding-sim/internal/data"
	"funding-sim/internal/model"
	"funding-sim/internal/simulation"
	"funding-sim/internal/strategy"
)

var log = logrus.WithField("component", "api")

// SimulationHandler handles simulation-related requests
type SimulationHandler struct {
	engine   *simulation.Engine
	cache    *data.ResultCache
	curveDir string
}

// NewSimulationHandler creates a new simulation handler. Finished runs are kept
// in cache; curve_id requests are resolved against curveDir.
func NewSimulationHandler(cache *data.ResultCache, curveDir string) *SimulationHandler {
	return &SimulationHandler{
		engine:   simulation.New(),
		cache:    cache,
		curveDir: curveDir,
	}
}

// bindRequest decodes the body into req; an empty body keeps req's zero value.
func bindRequest(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, http.StatusBadRequest, models.CodeInvalidRequest, err.Error(), nil)
		return false
	}
	return true
}

// buildParams resolves presets and overrides of req on top of the defaults.
// It writes the error response itself and reports whether to continue.
func (h *SimulationHandler) buildParams(c *gin.Context, req models.SimulationRequest) (model.Params, bool) {
	p := model.DefaultParams()

	if req.CurveID != "" {
		preset, err := data.FindCurve(h.curveDir, req.CurveID)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				respondError(c, http.StatusNotFound, models.CodeNotFound, "curve not found: "+req.CurveID, nil)
			} else {
				respondSimulationError(c, err)
			}
			return p, false
		}
		p.CurveTenors = preset.Tenors
		p.CurveRates = preset.Rates
	}

	if req.Allocation != "" {
		a, err := strategy.Lookup(req.Allocation)
		if err != nil {
			respondError(c, http.StatusBadRequest, models.CodeInvalidRequest, err.Error(), nil)
			return p, false
		}
		p.DomesticWeight = a.DomesticWeight
	}

	if err := applyParams(&p, req.Params); err != nil {
		respondSimulationError(c, err)
		return p, false
	}
	return p, true
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulationHandler) RunSimulation(c *gin.Context) {
	var req models.SimulationRequest
	if !bindRequest(c, &req) {
		return
	}
	params, ok := h.buildParams(c, req)
	if !ok {
		return
	}

	start := time.Now()
	res, err := h.engine.Run(params)
	metrics.SimulationDurationMetrics.WithLabelValues("simulate").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SimulationRunsMetrics.WithLabelValues("simulate", "error").Inc()
		respondSimulationError(c, err)
		return
	}
	metrics.SimulationRunsMetrics.WithLabelValues("simulate", "ok").Inc()
	metrics.LastScenariosMetrics.Set(float64(params.Scenarios))

	id := h.cache.Put(res)
	metrics.CachedResultsMetrics.Set(float64(h.cache.Len()))

	resp := models.SimulationResponse{
		ID:      id,
		Status:  "completed",
		Params:  models.NewParamsView(params),
		Summary: analysis.Summarize(res.FundingRatios),
	}
	if req.Options.IncludeSamples {
		resp.Samples = models.NullableSamples(res.FundingRatios)
	}
	log.WithFields(logrus.Fields{
		"id":        id,
		"scenarios": params.Scenarios,
		"elapsed":   time.Since(start),
	}).Infof("simulation completed, mean funding ratio %.4f", resp.Summary.Mean)

	c.JSON(http.StatusOK, resp)
}

// GetSamples handles GET /api/v1/simulate/:id/samples
func (h *SimulationHandler) GetSamples(c *gin.Context) {
	id := c.Param("id")
	res, ok := h.cache.Get(id)
	if !ok {
		respondError(c, http.StatusNotFound, models.CodeNotFound, "simulation not found or expired: "+id, nil)
		return
	}
	c.JSON(http.StatusOK, models.SamplesResponse{
		ID:      id,
		Count:   len(res.FundingRatios),
		Samples: models.NullableSamples(res.FundingRatios),
	})
}

// CompareAllocations handles POST /api/v1/compare
func (h *SimulationHandler) CompareAllocations(c *gin.Context) {
	var req models.CompareRequest
	if !bindRequest(c, &req) {
		return
	}
	params, ok := h.buildParams(c, req.Base)
	if !ok {
		return
	}
	allocs := req.Allocations
	if len(allocs) == 0 {
		allocs = strategy.DemoAllocations()
	}

	start := time.Now()
	outcomes, err := strategy.Compare(c.Request.Context(), params, allocs)
	metrics.SimulationDurationMetrics.WithLabelValues("compare").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SimulationRunsMetrics.WithLabelValues("compare", "error").Inc()
		respondSimulationError(c, err)
		return
	}
	metrics.SimulationRunsMetrics.WithLabelValues("compare", "ok").Inc()
	metrics.LastScenariosMetrics.Set(float64(params.Scenarios))

	// allocation names are unique within a comparison
	weights := make(map[string]float64, len(outcomes))
	for _, o := range outcomes {
		weights[o.Allocation.Name] = o.Allocation.DomesticWeight
	}
	ranked := analysis.RankByStdDev(strategy.Summaries(outcomes))
	resp := models.CompareResponse{Comparison: make([]models.ComparisonResult, len(ranked))}
	for i, s := range ranked {
		resp.Comparison[i] = models.ComparisonResult{
			Rank:           i + 1,
			Name:           s.Label,
			DomesticWeight: weights[s.Label],
			Summary:        s,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// GetDefaults handles GET /api/v1/defaults
func (h *SimulationHandler) GetDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"params": models.NewParamsView(model.DefaultParams())})
}
