package bootstrap

import (
	"log"

	"github.com/go-authgate/riskgate/internal/cache"
	"github.com/go-authgate/riskgate/internal/config"
	"github.com/go-authgate/riskgate/internal/core"
	"github.com/go-authgate/riskgate/internal/metrics"
	"github.com/go-authgate/riskgate/internal/models"
)

// initializeMetrics initializes Prometheus metrics
func initializeMetrics(cfg *config.Config) core.Recorder {
	prometheusMetrics := metrics.Init(cfg.MetricsEnabled)
	if cfg.MetricsEnabled {
		log.Println("Prometheus metrics initialized")
	} else {
		log.Println("Metrics disabled (using noop implementation)")
	}
	return prometheusMetrics
}

// initializeUserCache returns nil when USER_CACHE_TTL is zero.
func initializeUserCache(cfg *config.Config) core.Cache[models.User] {
	if cfg.UserCacheTTL <= 0 {
		log.Println("User cache disabled")
		return nil
	}
	log.Printf("User cache enabled (TTL: %s)", cfg.UserCacheTTL)
	return cache.NewMemoryCache[models.User]()
}
