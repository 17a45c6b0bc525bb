package queries

import (
	"errors"

	"logistica/internal/core/domain/model/kernel"
	"logistica/internal/pkg/errs"
	"logistica/internal/pkg/guard"
)

var (
	ErrAuthenticateUserQueryIsNotConstructed = errors.New(
		"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
	)

	// ErrInvalidCredentials is returned for both unknown usernames and wrong
	// passwords, so callers cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AuthenticateUserQuery exchanges a username and password for a signed
// bearer token. Read-only: a login attempt never mutates the user record.
type AuthenticateUserQuery struct {
	username string
	password string
	guard    guard.ConstructorGuard
}

// NewAuthenticateUserQuery creates a login query.
// Both username and password must be non-empty.
func NewAuthenticateUserQuery(username, password string) (AuthenticateUserQuery, error) {
	var violations []error
	if username == "" {
		violations = append(violations, errs.NewValueIsRequiredError("username"))
	}
	if password == "" {
		violations = append(violations, errs.NewValueIsRequiredError("password"))
	}
	if len(violations) > 0 {
		return AuthenticateUserQuery{}, errors.Join(violations...)
	}

	return AuthenticateUserQuery{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Username returns the login name.
func (q AuthenticateUserQuery) Username() string {
	return q.username
}

// Password returns the plaintext password to verify.
func (q AuthenticateUserQuery) Password() string {
	return q.password
}

// Validate ensures the query was created through the constructor.
// Returns ErrAuthenticateUserQueryIsNotConstructed if validation fails.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// AuthenticateUserQueryResponse carries the signed token plus the identity
// echoed back to the client.
type AuthenticateUserQueryResponse struct {
	Token    string
	UserID   kernel.UUID
	Username string
}
