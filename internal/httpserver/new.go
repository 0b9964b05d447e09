package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"hr-recommendation/internal/recommendation"
	"hr-recommendation/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Middleware configuration
	rateLimit RateLimitConfig

	// Metrics
	metricsEnabled bool
	metricsPath    string

	// Recommendation domain
	recommendationUC recommendation.UseCase
	providers        []string
}

// RateLimitConfig mirrors config.RateLimitConfig.
type RateLimitConfig struct {
	Enabled         bool
	RequestsPerMin  int
	Burst           int
	MaxTrackedPeers int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	RateLimit RateLimitConfig

	MetricsEnabled bool
	MetricsPath    string

	RecommendationUC recommendation.UseCase
	// Providers lists "name/model" of the configured LLM providers.
	Providers []string
}

// New creates a new HTTPServer instance and registers all routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		shutdownTimeout:  cfg.ShutdownTimeout,
		rateLimit:        cfg.RateLimit,
		metricsEnabled:   cfg.MetricsEnabled,
		metricsPath:      cfg.MetricsPath,
		recommendationUC: cfg.RecommendationUC,
		providers:        cfg.Providers,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}
	if srv.metricsPath == "" {
		srv.metricsPath = defaultMetricsPath
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.recommendationUC == nil {
		return errors.New("recommendation usecase is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
