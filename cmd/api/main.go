package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hr-recommendation/config"
	_ "hr-recommendation/docs" // Swagger docs
	"hr-recommendation/internal/httpserver"
	"hr-recommendation/internal/metrics"
	"hr-recommendation/internal/recommendation"
	"hr-recommendation/internal/recommendation/usecase"
	"hr-recommendation/pkg/llmprovider"
	"hr-recommendation/pkg/log"
)

// @title       HR Recommendation API
// @description Employee recommendations from a language model with a rule-based fallback.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
		MaxSizeMB:    cfg.Logger.MaxSizeMB,
		MaxBackups:   cfg.Logger.MaxBackups,
		MaxAgeDays:   cfg.Logger.MaxAgeDays,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting HR Recommendation service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers. Without any, requests are answered by the rule engine.
	var (
		gen       recommendation.TextGenerator
		providers []string
	)
	manager, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, logger, metrics.ObserveLLMAttempt)
	if err != nil {
		logger.Warnf(ctx, "LLM providers unavailable, serving rule-based recommendations only: %v", err)
	} else {
		for _, p := range manager.Providers() {
			providers = append(providers, p.Name()+"/"+p.Model())
			logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
		}
		gen = llmprovider.NewTextGenerator(manager, cfg.Recommendation.Temperature, cfg.Recommendation.MaxTokens)
	}

	// 4. Recommendation UseCase
	recommendationUC := usecase.New(logger, gen, metrics.NewRecorder())

	// 5. HTTP Server
	shutdownTimeout, _ := time.ParseDuration(cfg.HTTPServer.ShutdownTimeout)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: shutdownTimeout,
		RateLimit: httpserver.RateLimitConfig{
			Enabled:         cfg.RateLimit.Enabled,
			RequestsPerMin:  cfg.RateLimit.RequestsPerMin,
			Burst:           cfg.RateLimit.Burst,
			MaxTrackedPeers: cfg.RateLimit.MaxTrackedPeers,
		},
		MetricsEnabled:   cfg.Metrics.Enabled,
		MetricsPath:      cfg.Metrics.Path,
		RecommendationUC: recommendationUC,
		Providers:        providers,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
