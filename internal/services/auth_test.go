package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-authgate/riskgate/internal/auth"
	"github.com/go-authgate/riskgate/internal/cache"
	"github.com/go-authgate/riskgate/internal/config"
	"github.com/go-authgate/riskgate/internal/core"
	"github.com/go-authgate/riskgate/internal/metrics"
	"github.com/go-authgate/riskgate/internal/mocks"
	"github.com/go-authgate/riskgate/internal/models"
	"github.com/go-authgate/riskgate/internal/risk"
	"github.com/go-authgate/riskgate/internal/store"
	"github.com/go-authgate/riskgate/internal/token"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()
	dsn := "file:" + uuid.New().String() + "?mode=memory&cache=shared"
	s, err := store.New(context.Background(), store.DriverSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, err = s.SeedUsers(context.Background(), store.DemoUsers())
	require.NoError(t, err)
	return s
}

// capturingAudit records entries synchronously.
type capturingAudit struct {
	mu      sync.Mutex
	entries []AuditLogEntry
}

func (c *capturingAudit) Log(_ context.Context, entry AuditLogEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, entry)
}

func (c *capturingAudit) last(t *testing.T) AuditLogEntry {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	require.NotEmpty(t, c.entries)
	return c.entries[len(c.entries)-1]
}

type pipeline struct {
	svc    *AuthService
	issuer *token.LocalSessionIssuer
	audit  *capturingAudit
}

func newPipeline(t *testing.T) pipeline {
	t.Helper()
	db := setupTestStore(t)
	creds := auth.NewLocalCredentialStore(
		db,
		cache.NewMemoryCache[models.User](),
		time.Minute,
		auth.StaticCodeVerifier{},
		metrics.NewNoopMetrics(),
	)
	issuer := token.NewLocalSessionIssuer(&config.Config{
		JWTSecret:  "test-secret-key-for-jwt-signing",
		SessionTTL: time.Hour,
		BaseURL:    "http://localhost:3000",
	})
	audit := &capturingAudit{}
	svc := NewAuthService(creds, issuer, nil, nil, metrics.NewNoopMetrics(), audit)
	return pipeline{svc: svc, issuer: issuer, audit: audit}
}

func desktopContext(email string) models.UserContext {
	return models.UserContext{
		Email:      email,
		DeviceType: models.DeviceDesktop,
		Browser:    "chrome",
		IPCountry:  "US",
		IPAddress:  "203.0.113.7",
	}
}

func mobileContext(email string) models.UserContext {
	uc := desktopContext(email)
	uc.DeviceType = models.DeviceMobile
	uc.Browser = "safari"
	return uc
}

func code(s string) *string { return &s }

func TestAuthenticate_ScenarioA_LowRiskPassword(t *testing.T) {
	p := newPipeline(t)
	ctx := context.Background()

	result := p.svc.Authenticate(ctx, desktopContext("user@lowrisk.com"), models.Credentials{
		Email:    "user@lowrisk.com",
		Password: "password123",
	})

	require.Equal(t, models.ResultSuccess, result.Kind)
	require.NotNil(t, result.Success)
	assert.Nil(t, result.MFARequired)
	assert.Nil(t, result.InternalError)
	assert.NotEmpty(t, result.Success.Token)
	assert.Equal(t, models.AuthenticatedUser{Email: "user@lowrisk.com", Role: models.RoleUser}, result.Success.User)
	assert.Equal(t, models.AuthInfo{RiskScore: 0, Method: "password", Reason: "Low risk score: 0"}, result.Success.AuthInfo)

	claims, err := p.issuer.Verify(ctx, result.Success.Token)
	require.NoError(t, err)
	assert.Equal(t, models.SessionClaims{
		Email:      "user@lowrisk.com",
		Role:       models.RoleUser,
		RiskScore:  0,
		AuthMethod: "password",
	}, *claims)

	entry := p.audit.last(t)
	assert.Equal(t, models.EventAuthenticationSuccess, entry.EventType)
	assert.True(t, entry.Success)
	assert.Equal(t, "203.0.113.7", entry.ActorIP)
}

func TestAuthenticate_ScenarioB_HighRiskMFA(t *testing.T) {
	p := newPipeline(t)
	ctx := context.Background()
	uc := mobileContext("admin@highrisk.com")

	first := p.svc.Authenticate(ctx, uc, models.Credentials{
		Email:    "admin@highrisk.com",
		Password: "admin123",
	})
	require.Equal(t, models.ResultMFARequired, first.Kind)
	require.NotNil(t, first.MFARequired)
	assert.Equal(t, 55, first.MFARequired.RiskScore)
	assert.Equal(t, "High risk score: 55", first.MFARequired.Reason)
	assert.Nil(t, first.Success)
	assert.Equal(t, models.EventMFAChallengeIssued, p.audit.last(t).EventType)

	second := p.svc.Authenticate(ctx, uc, models.Credentials{
		Email:    "admin@highrisk.com",
		Password: "admin123",
		MFACode:  code("654321"),
	})
	require.Equal(t, models.ResultSuccess, second.Kind)
	assert.Equal(t, models.RoleAdmin, second.Success.User.Role)
	assert.Equal(t, models.AuthInfo{RiskScore: 55, Method: "mfa", Reason: "High risk score: 55"}, second.Success.AuthInfo)

	claims, err := p.issuer.Verify(ctx, second.Success.Token)
	require.NoError(t, err)
	assert.Equal(t, "mfa", claims.AuthMethod)
	assert.Equal(t, 55, claims.RiskScore)
}

func TestAuthenticate_ScenarioB_EmptyCodeCountsAsMissing(t *testing.T) {
	p := newPipeline(t)

	result := p.svc.Authenticate(context.Background(), mobileContext("admin@highrisk.com"), models.Credentials{
		Email:    "admin@highrisk.com",
		Password: "admin123",
		MFACode:  code(""),
	})
	assert.Equal(t, models.ResultMFARequired, result.Kind)
}

func TestAuthenticate_ScenarioC_Failures(t *testing.T) {
	p := newPipeline(t)
	ctx := context.Background()

	tests := []struct {
		name string
		uc   models.UserContext
		cred models.Credentials
		want models.ResultKind
	}{
		{
			name: "unknown email",
			uc:   desktopContext("ghost@example.com"),
			cred: models.Credentials{Email: "ghost@example.com", Password: "password123"},
			want: models.ResultUserNotFound,
		},
		{
			name: "wrong password",
			uc:   desktopContext("user@lowrisk.com"),
			cred: models.Credentials{Email: "user@lowrisk.com", Password: "nope"},
			want: models.ResultInvalidCredentials,
		},
		{
			name: "wrong password with high risk never asks for MFA",
			uc:   mobileContext("admin@highrisk.com"),
			cred: models.Credentials{Email: "admin@highrisk.com", Password: "nope"},
			want: models.ResultInvalidCredentials,
		},
		{
			name: "wrong MFA code",
			uc:   mobileContext("admin@highrisk.com"),
			cred: models.Credentials{Email: "admin@highrisk.com", Password: "admin123", MFACode: code("000000")},
			want: models.ResultInvalidMFACode,
		},
		{
			name: "another user's MFA code",
			uc:   mobileContext("admin@highrisk.com"),
			cred: models.Credentials{Email: "admin@highrisk.com", Password: "admin123", MFACode: code("123456")},
			want: models.ResultInvalidMFACode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := p.svc.Authenticate(ctx, tt.uc, tt.cred)
			assert.Equal(t, tt.want, result.Kind)
			assert.Nil(t, result.Success)
			assert.Nil(t, result.MFARequired)
			assert.Nil(t, result.InternalError)

			entry := p.audit.last(t)
			assert.Equal(t, models.EventAuthenticationFailure, entry.EventType)
			assert.Equal(t, tt.want, entry.Outcome)
			assert.False(t, entry.Success)
		})
	}
}

func TestAuthenticate_LowRiskIgnoresSuppliedCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	credStore := mocks.NewMockCredentialStore(ctrl)
	issuer := mocks.NewMockSessionIssuer(ctrl)

	user := &models.User{Email: "user@lowrisk.com", PasswordHash: "h", Role: models.RoleUser}
	credStore.EXPECT().FindUser(gomock.Any(), "user@lowrisk.com").Return(user, nil)
	credStore.EXPECT().VerifyPassword("password123", "h").Return(true)
	credStore.EXPECT().VerifySecondFactor(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	issuer.EXPECT().Issue(gomock.Any(), models.SessionClaims{
		Email:      "user@lowrisk.com",
		Role:       models.RoleUser,
		RiskScore:  0,
		AuthMethod: "password",
	}).Return("signed", nil)

	svc := NewAuthService(credStore, issuer, nil, nil, metrics.NewNoopMetrics(), nil)
	result := svc.Authenticate(context.Background(), desktopContext("user@lowrisk.com"), models.Credentials{
		Email:    "user@lowrisk.com",
		Password: "password123",
		MFACode:  code("999999"),
	})

	require.Equal(t, models.ResultSuccess, result.Kind)
	assert.Equal(t, "signed", result.Success.Token)
}

func TestAuthenticate_StoreErrorIsInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	credStore := mocks.NewMockCredentialStore(ctrl)
	issuer := mocks.NewMockSessionIssuer(ctrl)

	credStore.EXPECT().FindUser(gomock.Any(), "user@lowrisk.com").
		Return(nil, errors.New("database is locked"))

	audit := &capturingAudit{}
	svc := NewAuthService(credStore, issuer, nil, nil, metrics.NewNoopMetrics(), audit)
	result := svc.Authenticate(context.Background(), desktopContext("user@lowrisk.com"), models.Credentials{
		Email:    "user@lowrisk.com",
		Password: "password123",
	})

	require.Equal(t, models.ResultInternalError, result.Kind)
	assert.Equal(t, "internal error", result.InternalError.Message)
	assert.Equal(t, models.EventAuthenticationError, audit.last(t).EventType)
}

func TestAuthenticate_IssuerErrorIsInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	credStore := mocks.NewMockCredentialStore(ctrl)
	issuer := mocks.NewMockSessionIssuer(ctrl)

	credStore.EXPECT().FindUser(gomock.Any(), gomock.Any()).
		Return(&models.User{Email: "user@lowrisk.com", PasswordHash: "h"}, nil)
	credStore.EXPECT().VerifyPassword(gomock.Any(), gomock.Any()).Return(true)
	issuer.EXPECT().Issue(gomock.Any(), gomock.Any()).Return("", token.ErrTokenGeneration)
	issuer.EXPECT().Name().Return("mock").AnyTimes()

	svc := NewAuthService(credStore, issuer, nil, nil, metrics.NewNoopMetrics(), nil)
	result := svc.Authenticate(context.Background(), desktopContext("user@lowrisk.com"), models.Credentials{
		Email:    "user@lowrisk.com",
		Password: "password123",
	})

	assert.Equal(t, models.ResultInternalError, result.Kind)
	assert.Nil(t, result.Success)
}

func TestAuthenticate_PanicIsInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	credStore := mocks.NewMockCredentialStore(ctrl)
	issuer := mocks.NewMockSessionIssuer(ctrl)

	credStore.EXPECT().FindUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) (*models.User, error) {
			panic("nil map write")
		})

	svc := NewAuthService(credStore, issuer, nil, nil, metrics.NewNoopMetrics(), nil)

	var result models.AuthResult
	require.NotPanics(t, func() {
		result = svc.Authenticate(context.Background(), desktopContext("user@lowrisk.com"), models.Credentials{
			Email:    "user@lowrisk.com",
			Password: "password123",
		})
	})
	require.Equal(t, models.ResultInternalError, result.Kind)
	assert.Equal(t, "internal error", result.InternalError.Message)
}

// explodingAudit panics on every entry.
type explodingAudit struct{}

func (explodingAudit) Log(context.Context, AuditLogEntry) {
	panic("audit sink exploded")
}

func TestAuthenticate_AuditPanicIsInternal(t *testing.T) {
	db := setupTestStore(t)
	creds := auth.NewLocalCredentialStore(db, nil, 0, auth.StaticCodeVerifier{}, metrics.NewNoopMetrics())
	issuer := token.NewLocalSessionIssuer(&config.Config{JWTSecret: "test-secret-key-for-jwt-signing"})
	svc := NewAuthService(creds, issuer, nil, nil, metrics.NewNoopMetrics(), explodingAudit{})

	var result models.AuthResult
	require.NotPanics(t, func() {
		result = svc.Authenticate(context.Background(), desktopContext("user@lowrisk.com"), models.Credentials{
			Email:    "user@lowrisk.com",
			Password: "password123",
		})
	})
	require.Equal(t, models.ResultInternalError, result.Kind)
	assert.Nil(t, result.Success)
	assert.Equal(t, "internal error", result.InternalError.Message)
}

func TestAuthenticate_RecorderPanicIsInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	credStore := mocks.NewMockCredentialStore(ctrl)
	issuer := mocks.NewMockSessionIssuer(ctrl)
	recorder := mocks.NewMockRecorder(ctrl)

	credStore.EXPECT().FindUser(gomock.Any(), "user@lowrisk.com").
		Return(nil, core.ErrUserNotFound)
	recorder.EXPECT().RecordAuthAttempt(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(string, string, time.Duration) { panic("registry closed") })

	svc := NewAuthService(credStore, issuer, nil, nil, recorder, nil)

	var result models.AuthResult
	require.NotPanics(t, func() {
		result = svc.Authenticate(context.Background(), desktopContext("user@lowrisk.com"), models.Credentials{
			Email:    "user@lowrisk.com",
			Password: "password123",
		})
	})
	assert.Equal(t, models.ResultInternalError, result.Kind)
}

func TestAuthenticate_RecordsMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	credStore := mocks.NewMockCredentialStore(ctrl)
	issuer := mocks.NewMockSessionIssuer(ctrl)
	recorder := mocks.NewMockRecorder(ctrl)

	credStore.EXPECT().FindUser(gomock.Any(), "admin@highrisk.com").
		Return(&models.User{Email: "admin@highrisk.com", PasswordHash: "h", Role: models.RoleAdmin}, nil)
	credStore.EXPECT().VerifyPassword("admin123", "h").Return(true)

	recorder.EXPECT().RecordAuthAttempt("mfa", "mfa_required", gomock.Any())
	recorder.EXPECT().RecordRiskScore(55)
	recorder.EXPECT().RecordRiskRule("mobile_device")
	recorder.EXPECT().RecordRiskRule("privileged_identity")
	recorder.EXPECT().RecordMFAChallenge()

	svc := NewAuthService(credStore, issuer, nil, nil, recorder, nil)
	result := svc.Authenticate(context.Background(), mobileContext("admin@highrisk.com"), models.Credentials{
		Email:    "admin@highrisk.com",
		Password: "admin123",
	})
	assert.Equal(t, models.ResultMFARequired, result.Kind)
}

func TestAuthenticate_CustomThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	credStore := mocks.NewMockCredentialStore(ctrl)
	issuer := mocks.NewMockSessionIssuer(ctrl)

	credStore.EXPECT().FindUser(gomock.Any(), gomock.Any()).
		Return(&models.User{Email: "admin@highrisk.com", PasswordHash: "h", Role: models.RoleAdmin}, nil)
	credStore.EXPECT().VerifyPassword(gomock.Any(), gomock.Any()).Return(true)
	issuer.EXPECT().Issue(gomock.Any(), gomock.Any()).Return("signed", nil)

	svc := NewAuthService(credStore, issuer, nil, risk.NewSelector(70), metrics.NewNoopMetrics(), nil)
	result := svc.Authenticate(context.Background(), mobileContext("admin@highrisk.com"), models.Credentials{
		Email:    "admin@highrisk.com",
		Password: "admin123",
	})

	require.Equal(t, models.ResultSuccess, result.Kind)
	assert.Equal(t, "password", result.Success.AuthInfo.Method)
}

func TestAuthenticate_Deterministic(t *testing.T) {
	p := newPipeline(t)
	ctx := context.Background()
	uc := mobileContext("admin@highrisk.com")
	creds := models.Credentials{Email: "admin@highrisk.com", Password: "admin123"}

	first := p.svc.Authenticate(ctx, uc, creds)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, p.svc.Authenticate(ctx, uc, creds))
	}
}

func TestAuthenticate_ConcurrentCalls(t *testing.T) {
	p := newPipeline(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r := p.svc.Authenticate(ctx, desktopContext("user@lowrisk.com"), models.Credentials{
				Email: "user@lowrisk.com", Password: "password123",
			})
			assert.Equal(t, models.ResultSuccess, r.Kind)
		}()
		go func() {
			defer wg.Done()
			r := p.svc.Authenticate(ctx, mobileContext("admin@highrisk.com"), models.Credentials{
				Email: "admin@highrisk.com", Password: "admin123",
			})
			assert.Equal(t, models.ResultMFARequired, r.Kind)
		}()
	}
	wg.Wait()
}

func TestAuthenticate_AuditNeverCarriesSecrets(t *testing.T) {
	p := newPipeline(t)

	p.svc.Authenticate(context.Background(), mobileContext("admin@highrisk.com"), models.Credentials{
		Email:    "admin@highrisk.com",
		Password: "admin123",
		MFACode:  code("000000"),
	})

	entry := p.audit.last(t)
	for key, value := range entry.Details {
		assert.NotContains(t, key, "password")
		assert.NotEqual(t, "admin123", value)
		assert.NotEqual(t, "000000", value)
	}
}

func TestVerifySession(t *testing.T) {
	p := newPipeline(t)
	ctx := context.Background()

	result := p.svc.Authenticate(ctx, desktopContext("user@lowrisk.com"), models.Credentials{
		Email: "user@lowrisk.com", Password: "password123",
	})
	require.True(t, result.IsSuccess())

	session := p.svc.VerifySession(ctx, result.Success.Token)
	require.True(t, session.Valid)
	assert.Equal(t, "user@lowrisk.com", session.Claims.Email)

	invalid := p.svc.VerifySession(ctx, result.Success.Token+"x")
	assert.False(t, invalid.Valid)
	assert.Nil(t, invalid.Claims)

	assert.False(t, p.svc.VerifySession(ctx, "").Valid)
}

func TestVerifySession_IssuerErrorsCollapse(t *testing.T) {
	ctrl := gomock.NewController(t)
	issuer := mocks.NewMockSessionIssuer(ctrl)
	recorder := mocks.NewMockRecorder(ctrl)

	issuer.EXPECT().Verify(gomock.Any(), "expired").Return(nil, token.ErrExpiredToken)
	issuer.EXPECT().Verify(gomock.Any(), "boom").DoAndReturn(
		func(context.Context, string) (*models.SessionClaims, error) { panic("boom") },
	)
	recorder.EXPECT().RecordSessionValidation(false, gomock.Any()).Times(2)

	svc := NewAuthService(mocks.NewMockCredentialStore(ctrl), issuer, nil, nil, recorder, nil)

	assert.Equal(t, models.SessionResult{Valid: false}, svc.VerifySession(context.Background(), "expired"))
	assert.Equal(t, models.SessionResult{Valid: false}, svc.VerifySession(context.Background(), "boom"))
}

func TestVerifySession_RecorderPanicIsInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	issuer := mocks.NewMockSessionIssuer(ctrl)
	recorder := mocks.NewMockRecorder(ctrl)

	issuer.EXPECT().Verify(gomock.Any(), "tok").
		Return(&models.SessionClaims{Email: "user@lowrisk.com"}, nil)
	recorder.EXPECT().RecordSessionValidation(true, gomock.Any()).
		Do(func(bool, time.Duration) { panic("registry closed") })

	svc := NewAuthService(mocks.NewMockCredentialStore(ctrl), issuer, nil, nil, recorder, nil)

	var result models.SessionResult
	require.NotPanics(t, func() {
		result = svc.VerifySession(context.Background(), "tok")
	})
	assert.False(t, result.Valid)
}

func TestAssessRisk(t *testing.T) {
	svc := NewAuthService(nil, nil, nil, nil, metrics.NewNoopMetrics(), nil)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	uc := models.UserContext{
		Email:      "admin@highrisk.com",
		DeviceType: models.DeviceDesktop,
		Browser:    models.BrowserUnknown,
		IPCountry:  "US",
	}
	a := svc.AssessRisk(uc)

	assert.Equal(t, 65, a.RiskScore)
	assert.True(t, a.AuthMethod.RequiresMFA)
	assert.Equal(t, "High risk score: 65", a.AuthMethod.Reason)
	assert.Equal(t, "2026-01-02T03:04:05Z", a.Timestamp)
	require.Len(t, a.Violations, 2)
	assert.Equal(t, "unknown_browser", a.Violations[0].Rule)
	assert.Equal(t, "privileged_identity", a.Violations[1].Rule)
	assert.Equal(t, uc, a.UserContext)
}

func TestNewAuthService_Defaults(t *testing.T) {
	var _ core.CredentialStore = (*auth.LocalCredentialStore)(nil)

	svc := NewAuthService(nil, nil, nil, nil, metrics.NewNoopMetrics(), nil)
	assert.NotNil(t, svc.scorer)
	assert.Equal(t, risk.RiskThreshold, svc.selector.Threshold())
}

func TestSeededPasswordsAreHashed(t *testing.T) {
	db := setupTestStore(t)
	user, err := db.GetUserByEmail(context.Background(), "user@lowrisk.com")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
}
