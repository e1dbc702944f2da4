package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-authgate/riskgate/internal/config"
	"github.com/go-authgate/riskgate/internal/core"
	"github.com/go-authgate/riskgate/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var _ core.SessionIssuer = (*LocalSessionIssuer)(nil)

// LocalSessionIssuer signs session tokens with HS256 using the process secret.
type LocalSessionIssuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewLocalSessionIssuer creates an issuer from config. A zero SessionTTL
// falls back to config.DefaultSessionTTL.
func NewLocalSessionIssuer(cfg *config.Config) *LocalSessionIssuer {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = config.DefaultSessionTTL
	}
	return &LocalSessionIssuer{
		secret: []byte(cfg.JWTSecret),
		ttl:    ttl,
		issuer: cfg.BaseURL,
		now:    time.Now,
	}
}

// Issue signs claims into a token that expires after the configured TTL.
func (p *LocalSessionIssuer) Issue(_ context.Context, claims models.SessionClaims) (string, error) {
	now := p.now()
	mapClaims := jwt.MapClaims{
		"email":       claims.Email,
		"role":        claims.Role,
		"risk_score":  claims.RiskScore,
		"auth_method": claims.AuthMethod,
		"exp":         now.Add(p.ttl).Unix(),
		"iat":         now.Unix(),
		"iss":         p.issuer,
		"sub":         claims.Email,
		"jti":         uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	tokenString, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}
	return tokenString, nil
}

// Verify checks signature and expiry and returns the embedded claims.
func (p *LocalSessionIssuer) Verify(_ context.Context, tokenString string) (*models.SessionClaims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.secret, nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return nil, ErrInvalidToken
	}
	role, _ := claims["role"].(string)
	method, _ := claims["auth_method"].(string)
	score, _ := claims["risk_score"].(float64)

	return &models.SessionClaims{
		Email:      email,
		Role:       role,
		RiskScore:  int(score),
		AuthMethod: method,
	}, nil
}

// Name returns provider name for logging
func (p *LocalSessionIssuer) Name() string {
	return "local"
}
