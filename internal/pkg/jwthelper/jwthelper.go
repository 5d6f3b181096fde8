// Package jwthelper inspects session tokens issued by the school API.
//
// The portal cannot verify the signature, it does not hold the key. It
// only reads the expiry so an expired session can be treated as absent
// before a protected call is made.
package jwthelper

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiresAt returns the exp claim of token. ok is false when the token is
// not a JWT or carries no expiry.
func ExpiresAt(token string) (exp time.Time, ok bool) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}

	return claims.ExpiresAt.Time, true
}

// Expired reports whether token is a JWT whose expiry is not after now.
// Opaque tokens never expire here.
func Expired(token string, now time.Time) bool {
	exp, ok := ExpiresAt(token)
	return ok && !exp.After(now)
}
