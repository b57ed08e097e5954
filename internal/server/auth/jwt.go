// Package auth issues and verifies the signed session tokens that identify
// a user on every request. Tokens are self-contained HS256 JWTs carrying
// the subject user id, issue time, and expiry; nothing is stored server-side,
// so a token stays valid until it expires.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/taskify/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload: registered claims only, with the user id in
// the Subject field.
type Claims struct {
	jwt.RegisteredClaims
}

// Service signs and verifies session tokens with a process-wide secret.
// The secret and validity window are injected at construction; there is no
// hidden global.
type Service struct {
	secret   []byte
	validity time.Duration
}

func NewService(secret []byte, validity time.Duration) *Service {
	return &Service{secret: secret, validity: validity}
}

// Issue creates a signed token for the given user id. The expiry is the
// issue time plus the configured validity window.
func (s *Service) Issue(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		},
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify parses and validates a token and returns its subject user id.
// Returns common.ErrTokenExpired for an expired token and
// common.ErrInvalidToken for any other defect (bad signature, malformed
// payload, wrong algorithm).
func (s *Service) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
