package middleware

import (
	"context"

	"github.com/go-authgate/riskgate/internal/models"

	"github.com/gin-gonic/gin"
)

// ContextKeySessionClaims is where RequireSession stores verified claims.
const ContextKeySessionClaims = "session_claims"

// SessionVerifier validates a session token.
type SessionVerifier interface {
	VerifySession(ctx context.Context, token string) models.SessionResult
}

// RequireSession rejects requests without a valid session token with 401.
func RequireSession(verifier SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			abortUnauthorized(c, "Session", "Access token required")
			return
		}

		result := verifier.VerifySession(c.Request.Context(), token)
		if !result.Valid || result.Claims == nil {
			abortUnauthorized(c, "Session", "Invalid or expired token")
			return
		}

		c.Set(ContextKeySessionClaims, result.Claims)
		c.Next()
	}
}

// SessionClaims returns the claims stored by RequireSession.
func SessionClaims(c *gin.Context) (*models.SessionClaims, bool) {
	v, ok := c.Get(ContextKeySessionClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*models.SessionClaims)
	return claims, ok
}
