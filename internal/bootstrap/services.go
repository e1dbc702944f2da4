package bootstrap

import (
	"log"

	"github.com/go-authgate/riskgate/internal/auth"
	"github.com/go-authgate/riskgate/internal/config"
	"github.com/go-authgate/riskgate/internal/core"
	"github.com/go-authgate/riskgate/internal/models"
	"github.com/go-authgate/riskgate/internal/risk"
	"github.com/go-authgate/riskgate/internal/services"
	"github.com/go-authgate/riskgate/internal/store"
	"github.com/go-authgate/riskgate/internal/token"
)

// initializeServices wires the credential store, session issuer and the
// authentication pipeline.
func initializeServices(
	cfg *config.Config,
	db *store.Store,
	userCache core.Cache[models.User],
	auditService *services.AuditService,
	m core.Recorder,
) (*auth.LocalCredentialStore, *services.AuthService, error) {
	verifier, err := auth.NewSecondFactorVerifier(cfg.MFAMode)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("Second factor verifier: %s", verifier.Name())

	credentials := auth.NewLocalCredentialStore(db, userCache, cfg.UserCacheTTL, verifier, m)
	issuer := token.NewLocalSessionIssuer(cfg)

	selector := risk.NewSelector(cfg.RiskThreshold)
	log.Printf("Risk threshold for MFA: %d", selector.Threshold())

	var audit services.AuditLogger
	if cfg.EnableAuditLogging {
		audit = auditService
	}

	authService := services.NewAuthService(
		credentials,
		issuer,
		risk.NewScorer(),
		selector,
		m,
		audit,
	)
	return credentials, authService, nil
}
