package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-authgate/riskgate/internal/core"
	"github.com/go-authgate/riskgate/internal/models"
	"github.com/go-authgate/riskgate/internal/risk"
)

// internalErrorMessage is the only detail an internal failure exposes.
const internalErrorMessage = "internal error"

// RiskAssessment is the read-only view of a risk decision, without any
// credential check.
type RiskAssessment struct {
	UserContext models.UserContext `json:"user_context"`
	RiskScore   int                `json:"risk_score"`
	AuthMethod  models.AuthMethod  `json:"auth_method"`
	Violations  []risk.Violation   `json:"violations"`
	Timestamp   string             `json:"timestamp"`
}

// AuthService runs the risk-adaptive login pipeline: score the context,
// pick a method, check the password, ask for a second factor when the
// method demands it and issue a session.
type AuthService struct {
	credentials core.CredentialStore
	issuer      core.SessionIssuer
	scorer      *risk.Scorer
	selector    *risk.Selector
	metrics     core.Recorder
	audit       AuditLogger
	now         func() time.Time
}

// NewAuthService wires the pipeline. A nil audit logger disables auditing.
func NewAuthService(
	credentials core.CredentialStore,
	issuer core.SessionIssuer,
	scorer *risk.Scorer,
	selector *risk.Selector,
	m core.Recorder,
	audit AuditLogger,
) *AuthService {
	if scorer == nil {
		scorer = risk.NewScorer()
	}
	if selector == nil {
		selector = risk.NewSelector(risk.RiskThreshold)
	}
	return &AuthService{
		credentials: credentials,
		issuer:      issuer,
		scorer:      scorer,
		selector:    selector,
		metrics:     m,
		audit:       audit,
		now:         time.Now,
	}
}

// Authenticate never returns an error; every outcome, including internal
// failures and panics in collaborators, is a variant of AuthResult.
func (s *AuthService) Authenticate(
	ctx context.Context,
	uc models.UserContext,
	creds models.Credentials,
) (result models.AuthResult) {
	start := s.now()
	var (
		decision   models.AuthDecision
		violations []risk.Violation
	)

	// Registered first so it also catches panics from metrics and audit.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Auth] Panic while recording attempt for %s: %v", creds.Email, r)
			result = models.NewInternalErrorResult(internalErrorMessage)
		}
	}()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Auth] Panic during authentication for %s: %v", creds.Email, r)
			result = models.NewInternalErrorResult(internalErrorMessage)
		}
		s.observe(ctx, creds.Email, decision, violations, result, s.now().Sub(start))
	}()

	assessment := s.scorer.Assess(uc)
	violations = assessment.Violations
	authMethod := s.selector.Select(assessment.Score)
	decision = models.NewAuthDecision(assessment.Score, authMethod, uc, s.now())

	user, err := s.credentials.FindUser(ctx, creds.Email)
	if errors.Is(err, core.ErrUserNotFound) {
		return models.NewFailureResult(models.ResultUserNotFound)
	}
	if err != nil {
		log.Printf("[Auth] Credential lookup failed for %s: %v", creds.Email, err)
		return models.NewInternalErrorResult(internalErrorMessage)
	}

	if !s.credentials.VerifyPassword(creds.Password, user.PasswordHash) {
		return models.NewFailureResult(models.ResultInvalidCredentials)
	}

	if authMethod.RequiresMFA {
		if !creds.HasMFACode() {
			return models.NewMFARequiredResult(decision.RiskScore, authMethod.Reason)
		}
		if !s.credentials.VerifySecondFactor(ctx, creds.Email, *creds.MFACode) {
			return models.NewFailureResult(models.ResultInvalidMFACode)
		}
	}

	token, err := s.issuer.Issue(ctx, models.SessionClaims{
		Email:      user.Email,
		Role:       user.Role,
		RiskScore:  decision.RiskScore,
		AuthMethod: string(authMethod.Method),
	})
	if err != nil {
		log.Printf("[Auth] Session issuance failed for %s via %s: %v", creds.Email, s.issuer.Name(), err)
		return models.NewInternalErrorResult(internalErrorMessage)
	}

	return models.NewSuccessResult(
		token,
		models.AuthenticatedUser{Email: user.Email, Role: user.Role},
		models.AuthInfo{
			RiskScore: decision.RiskScore,
			Method:    string(authMethod.Method),
			Reason:    authMethod.Reason,
		},
	)
}

// VerifySession reports whether token is a live session; every failure
// cause yields Valid == false.
func (s *AuthService) VerifySession(ctx context.Context, token string) (result models.SessionResult) {
	start := s.now()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Auth] Panic while recording session validation: %v", r)
			result = models.SessionResult{Valid: false}
		}
	}()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Auth] Panic during session verification: %v", r)
			result = models.SessionResult{Valid: false}
		}
		s.metrics.RecordSessionValidation(result.Valid, s.now().Sub(start))
	}()

	claims, err := s.issuer.Verify(ctx, token)
	if err != nil || claims == nil {
		return models.SessionResult{Valid: false}
	}
	return models.SessionResult{Valid: true, Claims: claims}
}

// AssessRisk scores a context and picks a method without touching
// credentials.
func (s *AuthService) AssessRisk(uc models.UserContext) RiskAssessment {
	assessment := s.scorer.Assess(uc)
	return RiskAssessment{
		UserContext: uc,
		RiskScore:   assessment.Score,
		AuthMethod:  s.selector.Select(assessment.Score),
		Violations:  assessment.Violations,
		Timestamp:   s.now().UTC().Format(time.RFC3339),
	}
}

// observe records metrics and the audit event for one attempt.
func (s *AuthService) observe(
	ctx context.Context,
	email string,
	decision models.AuthDecision,
	violations []risk.Violation,
	result models.AuthResult,
	duration time.Duration,
) {
	method := string(decision.AuthMethod.Method)
	if method == "" {
		method = "unknown"
	}

	s.metrics.RecordAuthAttempt(method, string(result.Kind), duration)
	s.metrics.RecordRiskScore(decision.RiskScore)
	for _, v := range violations {
		s.metrics.RecordRiskRule(v.Rule)
	}
	switch result.Kind {
	case models.ResultMFARequired:
		s.metrics.RecordMFAChallenge()
	case models.ResultSuccess:
		s.metrics.RecordSessionIssued(method)
	}

	if s.audit == nil {
		return
	}

	eventType, severity := auditEventFor(result.Kind)
	rules := make([]string, 0, len(violations))
	for _, v := range violations {
		rules = append(rules, v.Rule)
	}
	uc := decision.UserContext
	s.audit.Log(ctx, AuditLogEntry{
		EventType: eventType,
		Severity:  severity,
		Email:     email,
		ActorIP:   uc.IPAddress,
		Outcome:   result.Kind,
		RiskScore: decision.RiskScore,
		Method:    decision.AuthMethod.Method,
		Success:   result.IsSuccess(),
		Details: models.AuditDetails{
			"device_type":   string(uc.DeviceType),
			"browser":       uc.Browser,
			"ip_country":    uc.IPCountry,
			"is_vpn":        uc.IsVPN,
			"reason":        decision.AuthMethod.Reason,
			"risk_rules":    rules,
			"decision_time": decision.Timestamp,
			"duration_ms":   duration.Milliseconds(),
		},
	})
}

func auditEventFor(kind models.ResultKind) (models.EventType, models.EventSeverity) {
	switch kind {
	case models.ResultSuccess:
		return models.EventAuthenticationSuccess, models.SeverityInfo
	case models.ResultMFARequired:
		return models.EventMFAChallengeIssued, models.SeverityInfo
	case models.ResultInternalError:
		return models.EventAuthenticationError, models.SeverityError
	default:
		return models.EventAuthenticationFailure, models.SeverityWarning
	}
}
