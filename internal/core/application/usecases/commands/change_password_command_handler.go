package commands

import (
	"context"
)

// ChangePasswordCommandHandler handles operator password changes.
// The user entity verifies the current password and enforces the minimum
// length rule; this handler only coordinates the transaction.
type ChangePasswordCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewChangePasswordCommandHandler creates a handler for password change operations.
func NewChangePasswordCommandHandler(uowFactory UserUoWFactory) ChangePasswordCommandHandler {
	return ChangePasswordCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the password change command.
// Returns user.ErrPasswordMismatch when the current password is wrong and an
// ObjectNotFoundError when the user does not exist.
func (h *ChangePasswordCommandHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	account, err := repo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = account.ChangePassword(cmd.CurrentPassword(), cmd.NewPassword()); err != nil {
		return err
	}

	if err = repo.Update(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
