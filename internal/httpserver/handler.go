package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hr-recommendation/config"
	"hr-recommendation/internal/middleware"
	recommendationHTTP "hr-recommendation/internal/recommendation/delivery/http"
	"hr-recommendation/pkg/response"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, config.RateLimitConfig{
		Enabled:         srv.rateLimit.Enabled,
		RequestsPerMin:  srv.rateLimit.RequestsPerMin,
		Burst:           srv.rateLimit.Burst,
		MaxTrackedPeers: srv.rateLimit.MaxTrackedPeers,
	})

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		srv.l.Errorf(c.Request.Context(), "panic recovered: %v", recovered)
		response.InternalError(c, fmt.Errorf("panic: %v", recovered))
	}))
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.Logger())
	if srv.metricsEnabled {
		srv.gin.Use(mw.Metrics())
	}

	ctx := context.Background()
	if srv.environment == EnvironmentProduction {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metricsEnabled {
		srv.gin.GET(srv.metricsPath, gin.WrapH(promhttp.Handler()))
	}

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	h := recommendationHTTP.New(srv.l, srv.recommendationUC)
	recommendationHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Recommendation routes registered at /api/v1/recommendations")

	return nil
}
