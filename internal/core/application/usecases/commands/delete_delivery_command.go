package commands

import (
	"errors"

	"logistica/internal/core/domain/model/kernel"
	"logistica/internal/pkg/guard"
)

var (
	ErrDeleteDeliveryCommandIsNotConstructed = errors.New(
		"DeleteDeliveryCommand must be created via NewDeleteDeliveryCommand constructor",
	)
)

// DeleteDeliveryCommand represents the permanent removal of a delivery record.
// There is no soft delete or cascade; the record is gone after this command.
type DeleteDeliveryCommand struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteDeliveryCommand creates a command to delete a delivery.
// Validates that the identifier is valid.
func NewDeleteDeliveryCommand(deliveryID kernel.UUID) (DeleteDeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return DeleteDeliveryCommand{}, err
	}

	return DeleteDeliveryCommand{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteDeliveryCommandIsNotConstructed if validation fails.
func (c DeleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to delete.
func (c DeleteDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}
