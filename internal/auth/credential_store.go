package auth

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-authgate/riskgate/internal/core"
	"github.com/go-authgate/riskgate/internal/models"
	"github.com/go-authgate/riskgate/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// UserStore is the persistence the credential store reads from.
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

var _ core.CredentialStore = (*LocalCredentialStore)(nil)

// LocalCredentialStore resolves users from the database through a
// read-through cache and checks passwords with bcrypt.
type LocalCredentialStore struct {
	users    UserStore
	cache    core.Cache[models.User]
	cacheTTL time.Duration
	verifier core.SecondFactorVerifier
	metrics  core.Recorder
}

// NewLocalCredentialStore wires a credential store. A nil cache disables caching.
func NewLocalCredentialStore(
	users UserStore,
	cache core.Cache[models.User],
	cacheTTL time.Duration,
	verifier core.SecondFactorVerifier,
	m core.Recorder,
) *LocalCredentialStore {
	return &LocalCredentialStore{
		users:    users,
		cache:    cache,
		cacheTTL: cacheTTL,
		verifier: verifier,
		metrics:  m,
	}
}

// FindUser returns a copy of the stored user, or core.ErrUserNotFound.
// A lookup is a hit only when the cache already held the record; callers
// that share another goroutine's fetch count as misses.
func (s *LocalCredentialStore) FindUser(ctx context.Context, email string) (*models.User, error) {
	if email == "" {
		s.metrics.RecordUserLookup("not_found")
		return nil, core.ErrUserNotFound
	}

	var (
		user models.User
		err  error
	)
	if s.cache == nil || s.cacheTTL <= 0 {
		user, err = s.load(ctx, email)
	} else {
		key := cacheKey(email)
		if cached, getErr := s.cache.Get(ctx, key); getErr == nil {
			s.metrics.RecordUserLookup("hit")
			return &cached, nil
		}
		user, err = s.cache.GetWithFetch(ctx, key, s.cacheTTL,
			func(ctx context.Context, _ string) (models.User, error) {
				return s.load(ctx, email)
			})
	}

	switch {
	case errors.Is(err, store.ErrRecordNotFound):
		s.metrics.RecordUserLookup("not_found")
		return nil, core.ErrUserNotFound
	case err != nil:
		s.metrics.RecordUserLookup("error")
		log.Printf("[Auth] User lookup failed for %s: %v", email, err)
		return nil, err
	}
	s.metrics.RecordUserLookup("miss")
	return &user, nil
}

func (s *LocalCredentialStore) load(ctx context.Context, email string) (models.User, error) {
	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	return *u, nil
}

// VerifyPassword checks plain against a bcrypt hash.
func (s *LocalCredentialStore) VerifyPassword(plain, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// VerifySecondFactor is false for unknown users and for users without a secret.
func (s *LocalCredentialStore) VerifySecondFactor(ctx context.Context, email, code string) bool {
	user, err := s.FindUser(ctx, email)
	if err != nil {
		return false
	}
	return s.verifier.Verify(code, user.MFASecret)
}

// Invalidate drops a cached user record.
func (s *LocalCredentialStore) Invalidate(ctx context.Context, email string) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, cacheKey(email))
	}
}

func cacheKey(email string) string {
	return "user:" + email
}
