// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/scam-shield/models"
)

var (
	ErrInvalidCredential = errors.New("invalid credential")
	ErrMissingToken      = errors.New("missing bearer token")
	ErrInvalidToken      = errors.New("invalid token")
)

// TokenTTL is how long an admin token stays valid.
const TokenTTL = 24 * time.Hour

// Principal is the identity carried by a verified token.
type Principal struct {
	Role string
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Gate checks the admin password and issues and verifies admin tokens.
// It holds no mutable state after construction.
type Gate struct {
	password     []byte
	passwordHash []byte
	signingKey   []byte
	now          func() time.Time
}

// NewGate builds a Gate. When passwordHash is a bcrypt hash it is used
// instead of the plaintext password.
func NewGate(password, passwordHash, signingKey string) *Gate {
	return &Gate{
		password:     []byte(password),
		passwordHash: []byte(passwordHash),
		signingKey:   []byte(signingKey),
		now:          time.Now,
	}
}

// WithClock returns a copy of the gate that reads time from now.
func (g *Gate) WithClock(now func() time.Time) *Gate {
	c := *g
	c.now = now
	return &c
}

// CheckPassword compares the supplied password with the admin secret.
func (g *Gate) CheckPassword(supplied string) error {
	if len(g.passwordHash) > 0 {
		if bcrypt.CompareHashAndPassword(g.passwordHash, []byte(supplied)) != nil {
			return ErrInvalidCredential
		}
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(supplied), g.password) != 1 {
		return ErrInvalidCredential
	}
	return nil
}

// IssueToken returns a signed admin token if the password matches.
func (g *Gate) IssueToken(password string) (string, error) {
	if err := g.CheckPassword(password); err != nil {
		return "", err
	}

	now := g.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	})

	signed, err := token.SignedString(g.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks the signature and expiry of token.
func (g *Gate) VerifyToken(token string) (Principal, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return g.signingKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(g.now),
	)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return Principal{Role: c.Role}, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrMissingToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}
