package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DariushJinx/restaurants-api/internal/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestJWTService(t *testing.T, lifetimeMinutes int) *hmacJWTService {
	t.Helper()
	svc, err := NewJWTService(config.AuthConfig{
		JWTSecret:            testSecret,
		TokenLifetimeMinutes: lifetimeMinutes,
	})
	require.NoError(t, err)
	return svc.(*hmacJWTService)
}

func TestNewJWTService(t *testing.T) {
	_, err := NewJWTService(config.AuthConfig{
		JWTSecret:            "tooshort",
		TokenLifetimeMinutes: 60,
	})
	assert.Error(t, err, "a short secret must be rejected")
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestJWTService(t, 24*60)
	userID := uuid.New()

	token, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, 60)
	userID := uuid.New()

	issuedAt := time.Now().Add(-2 * time.Hour)
	svc.timeFunc = func() time.Time { return issuedAt }

	token, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)

	// Validation happens well past the lifetime plus clock skew
	svc.timeFunc = time.Now

	_, err = svc.ValidateToken(context.Background(), token)
	assert.True(t, errors.Is(err, ErrExpiredToken))
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestJWTService(t, 60)

	_, err := svc.ValidateToken(context.Background(), "not.a.token")
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestJWTService_WrongSigningKey(t *testing.T) {
	svc := newTestJWTService(t, 60)
	other := newTestJWTService(t, 60)
	other.signingKey = []byte("ffffffffffffffffffffffffffffffff")

	token, err := other.GenerateToken(context.Background(), uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("pw123456")
	require.NoError(t, err)
	require.NotEqual(t, "pw123456", hash)

	assert.NoError(t, hasher.Compare(hash, "pw123456"))
	assert.Error(t, hasher.Compare(hash, "wrongpassword"))
}
