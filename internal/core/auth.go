package core

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-authgate/riskgate/internal/models"
)

// ErrUserNotFound is returned by CredentialStore.FindUser when no record
// exists for the email.
var ErrUserNotFound = errors.New("user not found")

// CredentialStore holds per-user password hashes, roles and second-factor
// secrets. Lookups are read-only.
type CredentialStore interface {
	// FindUser returns ErrUserNotFound when the email is unknown.
	FindUser(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(plain, hash string) bool
	VerifySecondFactor(ctx context.Context, email, code string) bool
}

// SecondFactorVerifier checks a submitted code against a stored secret.
type SecondFactorVerifier interface {
	Verify(code, secret string) bool
	Name() string
}

// ContextExtractor derives the risk context of a login attempt from the
// raw request. clientIP is resolved by the HTTP layer.
type ContextExtractor interface {
	Extract(r *http.Request, clientIP, email string) models.UserContext
}
