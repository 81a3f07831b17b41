package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/gastrodesk/backoffice-api/internal/domain/auth"
	"github.com/gastrodesk/backoffice-api/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewJWTService(testSecret, "1h", false)
	require.NoError(t, err)
	return svc
}

func TestNewJWTService_InvalidDuration(t *testing.T) {
	_, err := NewJWTService(testSecret, "soon", false)
	assert.Error(t, err)
}

func TestGenerateAccessToken_CarriesSessionClaims(t *testing.T) {
	svc := newTestService(t)
	now := time.Now()
	sess := auth.Session{
		ID:        "sess-1",
		UserID:    "user-1",
		Email:     "ana@example.com",
		Name:      "Ana",
		Role:      user.RoleManager,
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	}

	token, expiresAt, err := svc.GenerateAccessToken(sess)
	require.NoError(t, err)
	assert.Equal(t, sess.ExpiresAt.Unix(), expiresAt)

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims["sid"])
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "manager", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestSSEToken(t *testing.T) {
	svc := newTestService(t)

	token, expiresIn, err := svc.GenerateSSEToken("user-1")
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	userID, err := svc.ValidateSSEToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestValidateSSEToken_RejectsAccessToken(t *testing.T) {
	svc := newTestService(t)
	now := time.Now()
	access, _, err := svc.GenerateAccessToken(auth.Session{
		ID: "s", UserID: "u", Role: user.RoleAdmin, IssuedAt: now, ExpiresAt: now.Add(time.Hour),
	})
	require.NoError(t, err)

	_, err = svc.ValidateSSEToken(access)
	assert.Error(t, err)

	_, err = svc.ValidateSSEToken("not-a-token")
	assert.Error(t, err)
}

func TestCookies(t *testing.T) {
	svc := newTestService(t)
	exp := time.Now().Add(time.Hour).Unix()

	c := svc.AccessTokenCookie("tok", exp)
	assert.Equal(t, CookieName, c.Name)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, "/", c.Path)

	cleared := svc.ClearAccessTokenCookie()
	assert.Empty(t, cleared.Value)
	assert.Equal(t, -1, cleared.MaxAge)
}

func TestGenerateAccessToken_CappedByAccessTTL(t *testing.T) {
	svc := newTestService(t)
	now := time.Now()

	_, expiresAt, err := svc.GenerateAccessToken(auth.Session{
		ID:        "sess-2",
		UserID:    "user-1",
		IssuedAt:  now,
		ExpiresAt: now.Add(24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour).Unix(), expiresAt)
}
