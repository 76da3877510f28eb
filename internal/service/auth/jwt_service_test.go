package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devhussain7/medium-api/internal/config"
)

const testSecret = "test-secret-that-is-at-least-32-chars!!"

func newTestService(t *testing.T, secret string) *hmacJWTService {
	t.Helper()

	svc, err := NewJWTService(config.AuthConfig{
		JWTSecret:            secret,
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)

	impl, ok := svc.(*hmacJWTService)
	require.True(t, ok)
	return impl
}

func TestNewJWTService_RejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{
		JWTSecret:            "too-short",
		TokenLifetimeMinutes: 60,
	})
	assert.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, testSecret)
	ctx := context.Background()

	for _, userID := range []int64{1, 42, 9007199254740991} {
		token, err := svc.GenerateToken(ctx, userID)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.ValidateToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.NotEmpty(t, claims.ID)
		assert.False(t, claims.ExpiresAt.IsZero(), "issued tokens must carry an expiry")
	}
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	issuer := newTestService(t, testSecret)
	verifier := newTestService(t, "another-secret-that-is-32-chars-long!!")

	token, err := issuer.GenerateToken(ctx, 7)
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(ctx, token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsMalformedInput(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, testSecret)
	ctx := context.Background()

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty string", token: ""},
		{name: "not a jwt", token: "garbage"},
		{name: "two segments", token: "abc.def"},
		{name: "junk segments", token: "a.b.c"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(ctx, tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, testSecret)
	ctx := context.Background()

	issuedAt := time.Now()
	svc.timeFunc = func() time.Time { return issuedAt }

	token, err := svc.GenerateToken(ctx, 7)
	require.NoError(t, err)

	// Jump past the lifetime plus the clock skew leeway.
	svc.timeFunc = func() time.Time {
		return issuedAt.Add(svc.tokenLifetime + svc.clockSkew + time.Minute)
	}

	claims, err := svc.ValidateToken(ctx, token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_RejectsMissingUserIDClaim(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, testSecret)
	ctx := context.Background()

	// A structurally valid token whose payload carries no resolvable id.
	token, err := svc.GenerateToken(ctx, 0)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(ctx, token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
