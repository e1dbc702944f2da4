package bootstrap

import (
	"context"
	"net/http"

	"github.com/go-authgate/riskgate/internal/auth"
	"github.com/go-authgate/riskgate/internal/config"
	"github.com/go-authgate/riskgate/internal/core"
	"github.com/go-authgate/riskgate/internal/models"
	"github.com/go-authgate/riskgate/internal/services"
	"github.com/go-authgate/riskgate/internal/store"

	"github.com/appleboy/graceful"
	"github.com/gin-gonic/gin"
)

// Application holds all initialized components
type Application struct {
	Config *config.Config

	// Core infrastructure
	DB              *store.Store
	MetricsRecorder core.Recorder
	UserCache       core.Cache[models.User]

	// Services
	AuditService *services.AuditService
	Credentials  *auth.LocalCredentialStore
	AuthService  *services.AuthService

	// HTTP
	HandlerSet handlerSet
	Router     *gin.Engine
	Server     *http.Server
}

// Run initializes and starts the application
func Run(ctx context.Context, cfg *config.Config) error {
	app, err := New(ctx, cfg)
	if err != nil {
		return err
	}

	app.startWithGracefulShutdown()
	return nil
}

// New builds every component without starting the HTTP server.
func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	app := &Application{Config: cfg}

	// Phase 1: Validate configuration
	if err := validateAllConfiguration(cfg); err != nil {
		return nil, err
	}

	// Phase 2: Initialize infrastructure
	if err := app.initializeInfrastructure(ctx); err != nil {
		_ = app.Shutdown(ctx)
		return nil, err
	}

	// Phase 3: Initialize business layer
	if err := app.initializeBusinessLayer(); err != nil {
		_ = app.Shutdown(ctx)
		return nil, err
	}

	// Phase 4: Initialize HTTP layer
	if err := app.initializeHTTPLayer(); err != nil {
		_ = app.Shutdown(ctx)
		return nil, err
	}

	return app, nil
}

// initializeInfrastructure sets up database, seed users, metrics and cache
func (app *Application) initializeInfrastructure(ctx context.Context) error {
	var err error

	app.DB, err = initializeDatabase(ctx, app.Config)
	if err != nil {
		return err
	}

	if err := seedUsers(ctx, app.Config, app.DB); err != nil {
		return err
	}

	app.MetricsRecorder = initializeMetrics(app.Config)
	app.UserCache = initializeUserCache(app.Config)
	return nil
}

// initializeBusinessLayer sets up services
func (app *Application) initializeBusinessLayer() error {
	// Audit service (required by the auth service)
	app.AuditService = services.NewAuditService(
		app.DB,
		app.Config.EnableAuditLogging,
		app.Config.AuditLogBufferSize,
	)

	var err error
	app.Credentials, app.AuthService, err = initializeServices(
		app.Config,
		app.DB,
		app.UserCache,
		app.AuditService,
		app.MetricsRecorder,
	)
	return err
}

// initializeHTTPLayer sets up handlers, router, and server
func (app *Application) initializeHTTPLayer() error {
	app.HandlerSet = initializeHandlers(app.Config, app.DB, app.AuthService)

	var err error
	app.Router, err = setupRouter(app.Config, app.HandlerSet, app.AuthService, app.MetricsRecorder)
	if err != nil {
		return err
	}
	app.Server = createHTTPServer(app.Config, app.Router)
	return nil
}

// Shutdown releases resources created by New when the server never started.
func (app *Application) Shutdown(ctx context.Context) error {
	if app.AuditService != nil {
		if err := app.AuditService.Shutdown(ctx); err != nil {
			return err
		}
	}
	if app.UserCache != nil {
		_ = app.UserCache.Close()
	}
	if app.DB != nil {
		return app.DB.Close()
	}
	return nil
}

// startWithGracefulShutdown starts the server and handles graceful shutdown
func (app *Application) startWithGracefulShutdown() {
	m := graceful.NewManager()

	// Shutdown jobs run concurrently; the database is closed by the
	// audit job once pending entries are flushed.
	addServerRunningJob(m, app.Server)
	addServerShutdownJob(m, app.Server, app.Config.ShutdownTimeout)
	addAuditServiceShutdownJob(m, app.AuditService, app.DB)
	addCacheCleanupJob(m, app.UserCache)

	// Wait for graceful shutdown
	<-m.Done()
}
