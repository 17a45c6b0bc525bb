package ports

import (
	"context"

	"logistica/internal/core/domain/model/kernel"
	"logistica/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for operator accounts.
type UserRepository interface {
	// Add persists a new user. Usernames are unique at the storage level.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user (password changes).
	// Returns an ObjectNotFoundError when the user does not exist.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by its unique identifier.
	// Returns an ObjectNotFoundError when the user does not exist.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByUsername retrieves a user by its unique login name.
	// Returns an ObjectNotFoundError when the user does not exist.
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}
