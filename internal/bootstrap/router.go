package bootstrap

import (
	"fmt"
	"log"

	"github.com/go-authgate/riskgate/internal/config"
	"github.com/go-authgate/riskgate/internal/core"
	"github.com/go-authgate/riskgate/internal/metrics"
	"github.com/go-authgate/riskgate/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter configures the Gin router with all routes and middleware
func setupRouter(
	cfg *config.Config,
	h handlerSet,
	sessions middleware.SessionVerifier,
	prometheusMetrics core.Recorder,
) (*gin.Engine, error) {
	setupGinMode(cfg)
	r := gin.New()

	// c.ClientIP() only reads X-Forwarded-For from these peers; an empty
	// list means the socket address is always used.
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}

	r.Use(metrics.HTTPMetricsMiddleware(prometheusMetrics))
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/health", h.health.Check)
	setupMetricsEndpoint(r, cfg)
	setupAllRoutes(r, h, sessions)

	logServerStartup(cfg)
	return r, nil
}

func setupGinMode(cfg *config.Config) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
}

// setupMetricsEndpoint configures the Prometheus metrics endpoint
func setupMetricsEndpoint(r *gin.Engine, cfg *config.Config) {
	switch {
	case !cfg.MetricsEnabled:
		log.Printf("Prometheus metrics disabled")
	case cfg.MetricsToken != "":
		log.Printf("Prometheus metrics enabled at /metrics with Bearer token authentication")
		r.GET(
			"/metrics",
			middleware.MetricsAuthMiddleware(cfg.MetricsToken),
			gin.WrapH(promhttp.Handler()),
		)
	default:
		log.Printf("Prometheus metrics enabled at /metrics (no authentication)")
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
}

// setupAllRoutes configures all application routes
func setupAllRoutes(r *gin.Engine, h handlerSet, sessions middleware.SessionVerifier) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", h.auth.Login)
		authGroup.GET("/verify", h.auth.Verify)
	}

	r.GET("/dashboard", middleware.RequireSession(sessions), h.auth.Dashboard)
	r.POST("/demo/risk-assessment", h.auth.RiskAssessment)
}

func logServerStartup(cfg *config.Config) {
	log.Printf("Server starting on %s", cfg.ServerAddr)
	log.Printf("  POST %s/auth/login", cfg.BaseURL)
	log.Printf("  GET  %s/auth/verify", cfg.BaseURL)
	log.Printf("  GET  %s/dashboard", cfg.BaseURL)
	log.Printf("  POST %s/demo/risk-assessment", cfg.BaseURL)
	log.Printf("  GET  %s/health", cfg.BaseURL)
	if cfg.SeedDemoUsers {
		log.Println("Demo users: user@lowrisk.com (password auth), admin@highrisk.com (MFA on high risk)")
	}
}
