package models

import (
	"fmt"
	"time"
)

// Method is the authentication method chosen for an attempt.
type Method string

const (
	MethodPassword Method = "password"
	MethodMFA      Method = "mfa"
)

// AuthMethod is the outcome of method selection. RequiresMFA is always
// Method == MethodMFA and Reason always carries the score that produced it.
type AuthMethod struct {
	Method      Method `json:"method"`
	RequiresMFA bool   `json:"requires_mfa"`
	Reason      string `json:"reason"`
}

// AuthDecision captures the risk decision for one attempt. It is built right
// before credential verification and dropped when the attempt completes.
type AuthDecision struct {
	RiskScore   int         `json:"risk_score"`
	AuthMethod  AuthMethod  `json:"auth_method"`
	UserContext UserContext `json:"user_context"`
	Timestamp   string      `json:"timestamp"`
}

// NewAuthDecision stamps a decision with the given time in RFC 3339 (UTC).
func NewAuthDecision(score int, method AuthMethod, uc UserContext, at time.Time) AuthDecision {
	return AuthDecision{
		RiskScore:   score,
		AuthMethod:  method,
		UserContext: uc,
		Timestamp:   at.UTC().Format(time.RFC3339),
	}
}

// Credentials are the secrets submitted with a login attempt.
// MFACode is nil when the client did not send one.
type Credentials struct {
	Email    string
	Password string
	MFACode  *string
}

// HasMFACode reports whether a non-empty second-factor code was submitted.
func (c Credentials) HasMFACode() bool {
	return c.MFACode != nil && *c.MFACode != ""
}

// String keeps secrets out of log output.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{Email:%s Password:*** MFACode:%s}", c.Email, maskCode(c.MFACode))
}

// GoString keeps secrets out of %#v output.
func (c Credentials) GoString() string {
	return c.String()
}

func maskCode(code *string) string {
	if code == nil {
		return "<nil>"
	}
	return "***"
}

// SessionClaims is the payload carried by an issued session token.
type SessionClaims struct {
	Email      string `json:"email"`
	Role       string `json:"role"`
	RiskScore  int    `json:"risk_score"`
	AuthMethod string `json:"auth_method"`
}
