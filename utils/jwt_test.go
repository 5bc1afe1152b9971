package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(testSecret, 42, SessionTTL)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	uid, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), uid)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken(testSecret, 42, -time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestParseTokenMalformed(t *testing.T) {
	_, err := ParseToken(testSecret, "not-a-token")
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("other-secret", 42, SessionTTL)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenNonNumericSubject(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestParseTokenRejectsOtherAlgorithms(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
