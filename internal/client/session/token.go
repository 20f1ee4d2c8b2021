package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiresAt decodes the access token without verifying its signature
// and returns the expiry claim. Verification belongs to the backend; the
// client only surfaces the expiry for display. Returns false for opaque or
// claimless tokens.
func TokenExpiresAt(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
