package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pedroescher01/gestorpro-premium-sub001/internal/handler"
	mid "github.com/pedroescher01/gestorpro-premium-sub001/internal/middleware"
	"github.com/pedroescher01/gestorpro-premium-sub001/internal/recipe"
	"github.com/pedroescher01/gestorpro-premium-sub001/internal/report"
	"github.com/pedroescher01/gestorpro-premium-sub001/internal/repository"
	"github.com/pedroescher01/gestorpro-premium-sub001/pkg/config"
	"github.com/pedroescher01/gestorpro-premium-sub001/pkg/database"
	"github.com/pedroescher01/gestorpro-premium-sub001/pkg/jwtutil"
	"github.com/pedroescher01/gestorpro-premium-sub001/pkg/logger"
	"github.com/pedroescher01/gestorpro-premium-sub001/prometheus"
	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	if err := logger.InitLogger(&logger.LogConfig{
		Level:       appConfig.Log.Level,
		Environment: appConfig.Server.Env,
		ServiceName: appConfig.ServiceName,
	}); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting service", appConfig.LogFields()...)

	metrics := prometheus.InitMetrics(appConfig.Metrics.Prefix, promclient.DefaultRegisterer)
	log.Info("Prometheus metrics initialized", zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	db, err := database.InitDB(&appConfig.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established", zap.String("driver", appConfig.DB.Driver))

	repos := repository.New(db, metrics)
	if appConfig.Seed.File != "" {
		seeded, err := repos.SeedFromFile(context.Background(), appConfig.Seed.File)
		if err != nil {
			log.Fatal("Failed to seed catalog", zap.String("seed_file", appConfig.Seed.File), zap.Error(err))
		}
		log.Info("Catalog seed applied",
			zap.Int("inputs", seeded.Inputs),
			zap.Int("products", seeded.Products),
			zap.Int("financial_entries", seeded.Finance),
			zap.Int("sales", seeded.Sales))
	}
	store := recipe.NewStore(repos.Inputs, repos.Recipes, recipe.WithLocale(appConfig.Recipe.Locale))
	loader := report.NewLoader(repos.Products, repos.Sales, repos.Finance)
	h := handler.New(store, repos.Inputs, repos.Products, loader, metrics)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(logger.Middleware())
	e.Use(mid.MetricsMiddleware(metrics))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", handler.Health)

	api := e.Group("/api")
	if appConfig.JWT.Enabled {
		api.Use(mid.AuthMiddleware(jwtutil.NewVerifier(appConfig.JWT.SigningKey), metrics))
		log.Info("Bearer token verification enabled")
	}
	h.Register(api)

	go func() {
		port := appConfig.Server.Port
		log.Info("Starting server", zap.String("port", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
		return
	}
	log.Info("Server shut down gracefully")
}
