package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestTokenExpiresAt_WithExpiry(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{"sub": "c-1", "exp": exp.Unix()})

	got, ok := TokenExpiresAt(token)
	require.True(t, ok)
	require.True(t, got.Equal(exp))
}

func TestTokenExpiresAt_NoExpClaim(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "c-1"})

	_, ok := TokenExpiresAt(token)
	require.False(t, ok)
}

func TestTokenExpiresAt_OpaqueToken(t *testing.T) {
	_, ok := TokenExpiresAt("not-a-jwt")
	require.False(t, ok)
}
