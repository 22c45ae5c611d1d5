package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"funding-sim/internal/api/models"
	"funding-sim/internal/strategy"
)

// StrategyHandler handles allocation-preset requests
type StrategyHandler struct{}

// NewStrategyHandler creates a new strategy handler
func NewStrategyHandler() *StrategyHandler {
	return &StrategyHandler{}
}

// ListStrategies handles GET /api/v1/strategies
func (h *StrategyHandler) ListStrategies(c *gin.Context) {
	presets := strategy.Presets()
	strategies := make([]models.StrategyInfo, 0, len(presets))
	for _, a := range presets {
		strategies = append(strategies, models.StrategyInfo{
			Name:           a.Name,
			Description:    a.Description,
			DomesticWeight: a.DomesticWeight,
			GlobalWeight:   a.GlobalWeight(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"strategies": strategies})
}
