// Package user contains the administrative operator account entity.
// A user is exactly the credential needed to obtain a bearer token; there are
// no roles or permissions beyond "is authenticated".
package user

import (
	"errors"
	"time"

	"logistica/internal/core/domain/model/kernel"
	"logistica/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor for password hashing.
const bcryptCost = 12

// minPasswordLength is the minimum accepted length for a new password.
const minPasswordLength = 6

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

	// ErrPasswordMismatch is returned when a supplied password does not match
	// the stored hash.
	ErrPasswordMismatch = errors.New("password does not match")
)

// User is an administrative operator account. Only the bcrypt hash of the
// password is kept; the plain password never leaves the constructor or the
// verification methods.
type User struct {
	id           kernel.UUID
	username     string
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewUser creates a user with a freshly hashed password.
// Username must be non-empty and the password at least 6 characters.
func NewUser(id kernel.UUID, username, password string) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &User{
		id:            id,
		username:      username,
		passwordHash:  string(hash),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreUser reconstructs a user from persistence with its stored hash and timestamps.
func RestoreUser(id kernel.UUID, username, passwordHash string, createdAt, updatedAt time.Time) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}
	if passwordHash == "" {
		return nil, errs.NewValueIsRequiredError("passwordHash")
	}

	return &User{
		id:            id,
		username:      username,
		passwordHash:  passwordHash,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the unique login name.
func (u *User) Username() string {
	return u.username
}

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// CreatedAt returns the creation timestamp (UTC).
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns the last modification timestamp (UTC).
func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// VerifyPassword checks a plain password against the stored hash.
// Returns ErrPasswordMismatch when the password is wrong.
func (u *User) VerifyPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

// ChangePassword verifies the current password and replaces the stored hash
// with a hash of the new one. The new password must be at least 6 characters.
func (u *User) ChangePassword(currentPassword, newPassword string) error {
	if err := u.VerifyPassword(currentPassword); err != nil {
		return err
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}

	u.passwordHash = string(hash)
	u.updatedAt = time.Now().UTC()
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < minPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), minPasswordLength, 72)
	}
	return nil
}
