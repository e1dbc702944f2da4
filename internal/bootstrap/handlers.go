package bootstrap

import (
	"github.com/go-authgate/riskgate/internal/config"
	"github.com/go-authgate/riskgate/internal/extractor"
	"github.com/go-authgate/riskgate/internal/handlers"
	"github.com/go-authgate/riskgate/internal/services"
	"github.com/go-authgate/riskgate/internal/store"
	"github.com/go-authgate/riskgate/internal/version"
)

// handlerSet holds all HTTP handler instances
type handlerSet struct {
	auth   *handlers.AuthHandler
	health *handlers.HealthHandler
}

// initializeHandlers creates all HTTP handlers
func initializeHandlers(
	cfg *config.Config,
	db *store.Store,
	authService *services.AuthService,
) handlerSet {
	contextExtractor := extractor.NewHeaderExtractor(cfg.DefaultCountry, cfg.TrustContextHeaders)

	return handlerSet{
		auth:   handlers.NewAuthHandler(authService, contextExtractor),
		health: handlers.NewHealthHandler(version.App, db),
	}
}
