package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"funding-sim/internal/api/models"
	"funding-sim/internal/data"
)

// CurveHandler handles forward-curve preset requests
type CurveHandler struct {
	curveDir string
}

// NewCurveHandler creates a curve handler reading presets from dir
// (default examples/curves under the working directory).
func NewCurveHandler(dir string) *CurveHandler {
	dir = data.ResolveCurveDir(dir)
	log.Infof("using curve directory: %s", dir)
	return &CurveHandler{curveDir: dir}
}

// CurveDir returns the resolved curve directory.
func (h *CurveHandler) CurveDir() string {
	return h.curveDir
}

// ListCurves handles GET /api/v1/curves
func (h *CurveHandler) ListCurves(c *gin.Context) {
	curves, err := data.ListCurves(h.curveDir)
	if err != nil {
		log.WithError(err).Errorf("failed to read curve directory %s", h.curveDir)
		respondError(c, http.StatusInternalServerError, models.CodeInternalError, "failed to read curve presets", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"curves": curves})
}
