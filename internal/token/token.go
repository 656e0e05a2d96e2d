// Package token inspects access tokens without verifying them.
//
// The client never checks token signatures; that is the server's job. The
// expiry read here is advisory only, used to avoid dispatching requests
// that are doomed to fail with 401.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expiry returns the expiry time encoded in the token's payload.
// The signature is not verified.
//
// The boolean is false when the token is structurally invalid or carries
// no usable exp claim. Callers must treat that as expired: a token whose
// expiry cannot be read would otherwise be sent forever.
func Expiry(tok string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tok, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// IsExpired reports whether the token is expired at the current wall-clock
// time. Malformed tokens and tokens without a numeric exp claim count as
// expired, forcing a refresh or a fresh login.
func IsExpired(tok string) bool {
	return IsExpiredAt(tok, time.Now())
}

// IsExpiredAt is IsExpired against an explicit instant. Expired means
// now >= exp.
func IsExpiredAt(tok string, now time.Time) bool {
	exp, ok := Expiry(tok)
	if !ok {
		return true
	}
	return !now.Before(exp)
}
