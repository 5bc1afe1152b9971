package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformedToken = errors.New("malformed token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrInvalidToken   = errors.New("invalid token")
)

// SessionTTL is how long an issued session token stays valid.
const SessionTTL = 7 * 24 * time.Hour

// GenerateToken issues an HS256 token whose subject is the user ID. The ID
// is numeric everywhere else; it becomes a string only at this boundary.
func GenerateToken(secret string, userID int64, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseToken validates a session token and returns the user ID it asserts.
// Structurally broken tokens (including a non-numeric subject) surface as
// ErrMalformedToken so the transport layer can answer 422 instead of 401.
func ParseToken(secret, token string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	_, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenMalformed):
		return 0, ErrMalformedToken
	case errors.Is(err, jwt.ErrTokenExpired):
		return 0, ErrExpiredToken
	default:
		return 0, ErrInvalidToken
	}
	uid, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrMalformedToken
	}
	return uid, nil
}
