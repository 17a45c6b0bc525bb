package queries

import (
	"context"
	"errors"

	"logistica/internal/core/domain/model/user"
	"logistica/internal/core/ports"
	"logistica/internal/pkg/errs"
)

// AuthenticateUserQueryHandler verifies credentials against the stored user
// and issues a bearer token on success. Unlike the other query handlers it
// goes through the user repository rather than raw SQL: password
// verification is domain logic that lives on the user entity.
type AuthenticateUserQueryHandler struct {
	users  ports.UserRepository
	tokens ports.TokenService
}

// NewAuthenticateUserQueryHandler creates a handler for login queries.
func NewAuthenticateUserQueryHandler(
	users ports.UserRepository,
	tokens ports.TokenService,
) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{users: users, tokens: tokens}
}

// Handle verifies the credentials and signs a token.
// Returns ErrInvalidCredentials when the username is unknown or the password
// does not match; the two cases are indistinguishable to the caller.
func (h AuthenticateUserQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateUserQuery,
) (AuthenticateUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	account, err := h.users.GetByUsername(ctx, query.Username())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return AuthenticateUserQueryResponse{}, ErrInvalidCredentials
		}
		return AuthenticateUserQueryResponse{}, err
	}

	if err = account.VerifyPassword(query.Password()); err != nil {
		if errors.Is(err, user.ErrPasswordMismatch) {
			return AuthenticateUserQueryResponse{}, ErrInvalidCredentials
		}
		return AuthenticateUserQueryResponse{}, err
	}

	token, err := h.tokens.Sign(account)
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	return AuthenticateUserQueryResponse{
		Token:    token,
		UserID:   account.ID(),
		Username: account.Username(),
	}, nil
}
