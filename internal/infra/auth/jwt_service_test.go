package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuebook/config"
	domainerrors "venuebook/internal/domain/errors"
	"venuebook/internal/domain/service"
)

func newTestTokenService(t *testing.T, ttl time.Duration) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.Auth.AccessTokenTTL = ttl

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.AccessTokenTTL = time.Hour

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_IssueAndResolve(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)
	userID := uuid.New()

	token, err := svc.Issue(userID, "PROVIDER")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "PROVIDER", claims.Role)
}

func TestJWTService_ResolveRejectsGarbage(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	for _, tokenString := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Resolve(tokenString)
		assert.Error(t, err, "expected error for token: %q", tokenString)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	}
}

func TestJWTService_ResolveRejectsExpired(t *testing.T) {
	svc := newTestTokenService(t, -time.Minute)

	token, err := svc.Issue(uuid.New(), "CUSTOMER")
	require.NoError(t, err)

	_, err = svc.Resolve(token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_ResolveRejectsWrongSecret(t *testing.T) {
	issuer := newTestTokenService(t, time.Hour)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "other-secret"
	otherCfg.Auth.AccessTokenTTL = time.Hour
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New(), "CUSTOMER")
	require.NoError(t, err)

	_, err = verifier.Resolve(token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}
