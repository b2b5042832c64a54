// Package auth implements the optional bearer-token gate.
//
// The gate is a single pass/fail check: the token must be present, must be
// signed HS256 with the shared secret, and must not be expired. It carries
// no roles or sessions and is not attached to any route set unless the
// deployment explicitly wires it (AUTH_ENABLED).
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService verifies bearer tokens against a shared secret.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a token service with the given shared secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Verify checks the token's signature and expiry. It returns an error for
// anything other than a valid HS256 token signed with the shared secret.
func (s *TokenService) Verify(tokenString string) error {
	_, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return fmt.Errorf("verify token: %w", err)
	}
	return nil
}

// Issue signs a token with the shared secret, valid for ttl. The book API
// never issues tokens itself; this exists for deployments that provision
// client credentials out of band, and for tests.
func (s *TokenService) Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
