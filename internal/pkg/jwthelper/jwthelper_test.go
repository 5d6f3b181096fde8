package jwthelper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("school-api-key"))
	require.NoError(t, err)

	return token
}

func TestExpired(t *testing.T) {
	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	past := signed(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))})
	future := signed(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))})
	noExp := signed(t, jwt.RegisteredClaims{Subject: "42"})

	assert.True(t, Expired(past, now))
	assert.False(t, Expired(future, now))
	assert.False(t, Expired(noExp, now))
	assert.False(t, Expired("abc", now))
	assert.False(t, Expired("", now))
}

func TestExpiresAt(t *testing.T) {
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	got, ok := ExpiresAt(signed(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)}))

	require.True(t, ok)
	assert.True(t, exp.Equal(got))
}
