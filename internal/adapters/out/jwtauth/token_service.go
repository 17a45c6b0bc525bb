// Package jwtauth implements the TokenService port with HMAC-signed JWTs.
// Tokens carry the user identifier as subject plus the username, and expire
// after a configurable lifetime.
package jwtauth

import (
	"errors"
	"fmt"
	"time"

	"logistica/internal/core/domain/model/kernel"
	"logistica/internal/core/domain/model/user"
	"logistica/internal/core/ports"
	"logistica/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v4"
)

var ErrInvalidToken = errors.New("token is invalid or expired")

type claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTTokenService signs and verifies bearer tokens with a shared HMAC secret.
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTTokenService creates a token service.
// The secret must be non-empty and the lifetime positive.
func NewJWTTokenService(secret string, ttl time.Duration) (*JWTTokenService, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("ttl",
			fmt.Errorf("%s is not a positive duration", ttl))
	}

	return &JWTTokenService{secret: []byte(secret), ttl: ttl}, nil
}

// Sign issues a token identifying the given user.
func (s *JWTTokenService) Sign(account *user.User) (string, error) {
	if err := account.Validate(); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: account.Username(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	return token.SignedString(s.secret)
}

// Verify parses and validates a token, returning the embedded identity.
// Any malformed, forged or expired token yields ErrInvalidToken; the
// underlying parser error is wrapped for logging.
func (s *JWTTokenService) Verify(tokenString string) (ports.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return ports.TokenClaims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	parsedClaims, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return ports.TokenClaims{}, ErrInvalidToken
	}

	userID, err := kernel.UUIDFromString(parsedClaims.Subject)
	if err != nil {
		return ports.TokenClaims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return ports.TokenClaims{
		UserID:   userID,
		Username: parsedClaims.Username,
	}, nil
}
