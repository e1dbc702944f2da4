package core

import (
	"context"

	"github.com/go-authgate/riskgate/internal/models"
)

// SessionIssuer is the interface that session-token backends must implement.
type SessionIssuer interface {
	// Issue signs claims into a token valid for a fixed period.
	Issue(ctx context.Context, claims models.SessionClaims) (string, error)
	// Verify returns the claims of a valid token, or an error for any
	// invalid, expired or tampered token.
	Verify(ctx context.Context, token string) (*models.SessionClaims, error)
	Name() string
}
