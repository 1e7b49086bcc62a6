package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry reads the exp claim out of a JWT without verifying its
// signature. The console never holds the backend's signing key; this is a
// hint for proactive re-login, not an authentication decision.
func TokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
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

// TokenExpired reports whether the stored token carries an exp claim in the
// past. Tokens without a readable exp claim are assumed live; the backend
// will answer 401 if they are not.
func (s *Store) TokenExpired() bool {
	exp, ok := TokenExpiry(s.Token())
	if !ok {
		return false
	}
	return time.Now().After(exp)
}
