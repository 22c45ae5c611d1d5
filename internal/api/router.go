package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"funding-sim/internal/api/handlers"
	"funding-sim/internal/api/middleware"
	"funding-sim/internal/api/models"
	"funding-sim/internal/data"
)

var log = logrus.WithField("component", "api")

// Options configures the HTTP router.
type Options struct {
	CurveDir  string // curve presets; default examples/curves
	StaticDir string // optional single-page frontend; skipped when missing
	Cache     *data.ResultCache
}

// NewRouter wires middleware, handlers and routes.
func NewRouter(opts Options) *gin.Engine {
	if opts.Cache == nil {
		opts.Cache = data.NewResultCache(0)
	}

	router := gin.New()
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	curveHandler := handlers.NewCurveHandler(opts.CurveDir)
	simulationHandler := handlers.NewSimulationHandler(opts.Cache, curveHandler.CurveDir())
	strategyHandler := handlers.NewStrategyHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/simulate", simulationHandler.RunSimulation)
		v1.GET("/simulate/:id/samples", simulationHandler.GetSamples)
		v1.POST("/compare", simulationHandler.CompareAllocations)
		v1.GET("/defaults", simulationHandler.GetDefaults)

		v1.GET("/strategies", strategyHandler.ListStrategies)
		v1.GET("/curves", curveHandler.ListCurves)
	}

	notFound := func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{Code: models.CodeNotFound, Message: "Not found"},
		})
	}

	if opts.StaticDir != "" {
		if _, err := os.Stat(opts.StaticDir); err == nil {
			router.Static("/assets", filepath.Join(opts.StaticDir, "assets"))
			router.StaticFile("/favicon.ico", filepath.Join(opts.StaticDir, "favicon.ico"))

			// Serve index.html for all non-API routes (SPA routing)
			router.NoRoute(func(c *gin.Context) {
				if strings.HasPrefix(c.Request.URL.Path, "/api") {
					notFound(c)
					return
				}
				c.File(filepath.Join(opts.StaticDir, "index.html"))
			})
			log.Infof("serving static files from %s", opts.StaticDir)
			return router
		}
		log.Infof("static directory %s not found, skipping static file serving", opts.StaticDir)
	}
	router.NoRoute(notFound)
	return router
}
