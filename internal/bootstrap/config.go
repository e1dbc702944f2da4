package bootstrap

import (
	"fmt"
	"log"

	"github.com/go-authgate/riskgate/internal/config"
)

const devJWTSecret = "riskgate-dev-secret-change-in-production"

// validateAllConfiguration validates all configuration settings
func validateAllConfiguration(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.JWTSecret == devJWTSecret {
		if cfg.IsProduction {
			return fmt.Errorf("invalid configuration: JWT_SECRET must be set in production")
		}
		log.Println("WARNING: using the development JWT_SECRET; set JWT_SECRET before deploying")
	}
	if cfg.TrustContextHeaders {
		log.Println("WARNING: TRUST_CONTEXT_HEADERS is enabled; only run behind a trusted proxy")
	}
	if len(cfg.TrustedProxies) > 0 {
		log.Printf("Trusting X-Forwarded-For from: %v", cfg.TrustedProxies)
	}
	return nil
}
