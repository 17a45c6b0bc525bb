package ports

import (
	"logistica/internal/core/domain/model/kernel"
	"logistica/internal/core/domain/model/user"
)

// TokenClaims is the identity carried by a verified bearer token.
type TokenClaims struct {
	UserID   kernel.UUID
	Username string
}

// TokenService issues and verifies the bearer tokens operators authenticate
// with. The concrete implementation lives in an outbound adapter; the core
// only depends on this contract.
type TokenService interface {
	// Sign issues a token identifying the given user.
	Sign(u *user.User) (string, error)

	// Verify parses and validates a token, returning the embedded identity.
	// Any malformed, forged or expired token yields an error.
	Verify(token string) (TokenClaims, error)
}
