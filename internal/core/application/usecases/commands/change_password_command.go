package commands

import (
	"errors"

	"logistica/internal/core/domain/model/kernel"
	"logistica/internal/pkg/errs"
	"logistica/internal/pkg/guard"
)

var (
	ErrChangePasswordCommandIsNotConstructed = errors.New(
		"ChangePasswordCommand must be created via NewChangePasswordCommand constructor",
	)
)

// ChangePasswordCommand represents an operator changing their own password.
// The current password must be re-proven even though the request already
// carries a valid bearer token.
type ChangePasswordCommand struct {
	userID          kernel.UUID
	currentPassword string
	newPassword     string

	guard guard.ConstructorGuard
}

// NewChangePasswordCommand creates a command to change an operator's password.
// Validates that the identifier is valid and both passwords are present; the
// minimum length rule for the new password is enforced by the user entity.
func NewChangePasswordCommand(userID kernel.UUID, currentPassword, newPassword string) (ChangePasswordCommand, error) {
	var errsList []error

	errsList = append(errsList, userID.Validate())
	if currentPassword == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError("currentPassword"))
	}
	if newPassword == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError("newPassword"))
	}

	if err := errors.Join(errsList...); err != nil {
		return ChangePasswordCommand{}, err
	}

	return ChangePasswordCommand{
		userID:          userID,
		currentPassword: currentPassword,
		newPassword:     newPassword,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangePasswordCommandIsNotConstructed if validation fails.
func (c ChangePasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangePasswordCommandIsNotConstructed)
}

// UserID returns the identifier of the operator changing their password.
func (c ChangePasswordCommand) UserID() kernel.UUID {
	return c.userID
}

// CurrentPassword returns the password to verify before the change.
func (c ChangePasswordCommand) CurrentPassword() string {
	return c.currentPassword
}

// NewPassword returns the replacement password.
func (c ChangePasswordCommand) NewPassword() string {
	return c.newPassword
}
