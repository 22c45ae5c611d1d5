package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"funding-sim/internal/api"
	"funding-sim/internal/data"
)

var log = logrus.WithField("component", "server")

func main() {
	// Get configuration from environment
	viper.SetDefault("api_port", "8080")
	viper.SetDefault("api_env", "development")
	viper.SetDefault("curve_dir", "")
	viper.SetDefault("static_dir", "./web/dist")
	viper.SetDefault("result_cache_ttl", time.Hour)
	viper.SetDefault("log_level", "info")
	viper.AutomaticEnv()

	logrus.SetFormatter(&prefixed.TextFormatter{FullTimestamp: true})
	if level, err := logrus.ParseLevel(viper.GetString("log_level")); err == nil {
		logrus.SetLevel(level)
	}

	if viper.GetString("api_env") == "production" {
		gin.SetMode(gin.ReleaseMode)
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cache := data.NewResultCache(viper.GetDuration("result_cache_ttl"))
	go cache.RunCleanup(ctx, 5*time.Minute)

	router := api.NewRouter(api.Options{
		CurveDir:  viper.GetString("curve_dir"),
		StaticDir: viper.GetString("static_dir"),
		Cache:     cache,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", viper.GetString("api_port")),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("starting API server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
