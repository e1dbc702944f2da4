package models

// ResultKind tags which variant of AuthResult is populated.
type ResultKind string

const (
	ResultSuccess            ResultKind = "success"
	ResultMFARequired        ResultKind = "mfa_required"
	ResultInvalidCredentials ResultKind = "invalid_credentials"
	ResultInvalidMFACode     ResultKind = "invalid_mfa_code"
	ResultUserNotFound       ResultKind = "user_not_found"
	ResultInternalError      ResultKind = "internal_error"
)

// AuthenticatedUser is the public view of the user returned on success.
type AuthenticatedUser struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuthInfo explains how the user was authenticated.
type AuthInfo struct {
	RiskScore int    `json:"risk_score"`
	Method    string `json:"method"`
	Reason    string `json:"reason"`
}

// SuccessResult is populated when Kind is ResultSuccess.
type SuccessResult struct {
	Token    string
	User     AuthenticatedUser
	AuthInfo AuthInfo
}

// MFARequiredResult is populated when Kind is ResultMFARequired.
// It is a request to resubmit with a code, not a failure.
type MFARequiredResult struct {
	RiskScore int
	Reason    string
}

// InternalErrorResult is populated when Kind is ResultInternalError.
type InternalErrorResult struct {
	Message string
}

// AuthResult is the tagged outcome of one authentication call.
// Exactly one of the pointer payloads matches Kind; the failure kinds
// without payload leave all three nil.
type AuthResult struct {
	Kind          ResultKind
	Success       *SuccessResult
	MFARequired   *MFARequiredResult
	InternalError *InternalErrorResult
}

// NewSuccessResult builds a success outcome.
func NewSuccessResult(token string, user AuthenticatedUser, info AuthInfo) AuthResult {
	return AuthResult{
		Kind:    ResultSuccess,
		Success: &SuccessResult{Token: token, User: user, AuthInfo: info},
	}
}

// NewMFARequiredResult builds a continuation outcome.
func NewMFARequiredResult(score int, reason string) AuthResult {
	return AuthResult{
		Kind:        ResultMFARequired,
		MFARequired: &MFARequiredResult{RiskScore: score, Reason: reason},
	}
}

// NewFailureResult builds one of the payload-less failure outcomes.
func NewFailureResult(kind ResultKind) AuthResult {
	return AuthResult{Kind: kind}
}

// NewInternalErrorResult builds an internal error outcome with a safe message.
func NewInternalErrorResult(message string) AuthResult {
	return AuthResult{
		Kind:          ResultInternalError,
		InternalError: &InternalErrorResult{Message: message},
	}
}

// IsSuccess reports whether the attempt produced a session.
func (r AuthResult) IsSuccess() bool {
	return r.Kind == ResultSuccess
}

// SessionResult is the outcome of verifying a session token. Every failure
// cause collapses to Valid == false.
type SessionResult struct {
	Valid  bool
	Claims *SessionClaims
}
