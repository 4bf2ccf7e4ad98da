// Package auth verifies bearer tokens minted by the identity provider. Users
// and credentials live there; this service only needs the subject.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
)

var errEmptyToken = errors.New("token is empty")

// TokenVerifier validates HS256 tokens and extracts the user identifier.
type TokenVerifier struct {
	secret []byte
	issuer string
	clock  clockwork.Clock
}

// NewTokenVerifier creates a verifier. secret must be at least 32 characters.
func NewTokenVerifier(secret, issuer string, clock clockwork.Clock) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret), issuer: issuer, clock: clock}
}

// ValidateToken parses token and returns its subject.
func (v *TokenVerifier) ValidateToken(_ context.Context, token string) (string, error) {
	if token == "" {
		return "", errEmptyToken
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.clock.Now),
	)
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	if claims.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return claims.Subject, nil
}

// IssueToken signs a token for userID valid for ttl. Used for local
// development and tests; production tokens come from the identity provider.
func (v *TokenVerifier) IssueToken(userID string, ttl time.Duration) (string, error) {
	now := v.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    v.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
