package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-authgate/riskgate/internal/core"
	"github.com/go-authgate/riskgate/internal/middleware"
	"github.com/go-authgate/riskgate/internal/models"
	"github.com/go-authgate/riskgate/internal/services"

	"github.com/gin-gonic/gin"
)

// AuthPipeline is the authentication service the handlers drive.
type AuthPipeline interface {
	Authenticate(ctx context.Context, uc models.UserContext, creds models.Credentials) models.AuthResult
	VerifySession(ctx context.Context, token string) models.SessionResult
	AssessRisk(uc models.UserContext) services.RiskAssessment
}

// AuthHandler exposes the login pipeline over HTTP.
type AuthHandler struct {
	pipeline  AuthPipeline
	extractor core.ContextExtractor
	now       func() time.Time
}

func NewAuthHandler(pipeline AuthPipeline, extractor core.ContextExtractor) *AuthHandler {
	return &AuthHandler{
		pipeline:  pipeline,
		extractor: extractor,
		now:       time.Now,
	}
}

// LoginRequest is the login body. mfaCode is accepted as an alias of mfa_code.
type LoginRequest struct {
	Email         string  `json:"email"    binding:"required"`
	Password      string  `json:"password" binding:"required"`
	MFACode       *string `json:"mfa_code"`
	LegacyMFACode *string `json:"mfaCode"`
}

func (r LoginRequest) credentials() models.Credentials {
	code := r.MFACode
	if code == nil {
		code = r.LegacyMFACode
	}
	return models.Credentials{
		Email:    r.Email,
		Password: r.Password,
		MFACode:  code,
	}
}

// Login runs one authentication attempt.
// Unknown users and wrong passwords get the same 401 body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "email and password are required",
		})
		return
	}

	uc := h.extractor.Extract(c.Request, c.ClientIP(), req.Email)
	result := h.pipeline.Authenticate(c.Request.Context(), uc, req.credentials())

	switch result.Kind {
	case models.ResultSuccess:
		s := result.Success
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"token":     s.Token,
			"user":      s.User,
			"auth_info": s.AuthInfo,
		})
	case models.ResultMFARequired:
		c.JSON(http.StatusOK, gin.H{
			"success":      false,
			"requires_mfa": true,
			"message":      "MFA code required",
			"risk_score":   result.MFARequired.RiskScore,
			"reason":       result.MFARequired.Reason,
		})
	case models.ResultInvalidCredentials, models.ResultUserNotFound:
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Invalid credentials",
		})
	case models.ResultInvalidMFACode:
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Invalid MFA code",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Internal server error",
		})
	}
}

// Verify reports whether the bearer token is a live session.
func (h *AuthHandler) Verify(c *gin.Context) {
	token := middleware.BearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"valid": false,
			"error": "No token provided",
		})
		return
	}

	session := h.pipeline.VerifySession(c.Request.Context(), token)
	if !session.Valid {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "Invalid token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"user":  session.Claims,
	})
}

// Dashboard is a protected resource; it runs behind middleware.RequireSession.
func (h *AuthHandler) Dashboard(c *gin.Context) {
	claims, ok := middleware.SessionClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Welcome to the dashboard!",
		"user":      claims,
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}

type riskAssessmentRequest struct {
	Email string `json:"email"`
}

// RiskAssessment shows how the current request would be scored.
// No credentials are checked.
func (h *AuthHandler) RiskAssessment(c *gin.Context) {
	var req riskAssessmentRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	uc := h.extractor.Extract(c.Request, c.ClientIP(), req.Email)
	c.JSON(http.StatusOK, h.pipeline.AssessRisk(uc))
}
