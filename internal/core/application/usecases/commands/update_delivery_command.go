package commands

import (
	"errors"

	"logistica/internal/core/domain/model/delivery"
	"logistica/internal/core/domain/model/kernel"
	"logistica/internal/pkg/guard"
)

var (
	ErrUpdateDeliveryCommandIsNotConstructed = errors.New(
		"UpdateDeliveryCommand must be created via NewUpdateDeliveryCommand constructor",
	)
)

// UpdateDeliveryCommand represents a partial update of an existing delivery.
// Only the fields supplied in the patch are touched; per-field validation is
// applied by the aggregate when the patch is applied, so a malformed patch
// never partially updates a record. An empty patch is legal and only bumps
// the update timestamp.
type UpdateDeliveryCommand struct {
	deliveryID kernel.UUID
	patch      delivery.Patch

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryCommand creates a command to partially update a delivery.
// Validates that the identifier is valid.
func NewUpdateDeliveryCommand(deliveryID kernel.UUID, patch delivery.Patch) (UpdateDeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return UpdateDeliveryCommand{}, err
	}

	return UpdateDeliveryCommand{
		deliveryID: deliveryID,
		patch:      patch,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDeliveryCommandIsNotConstructed if validation fails.
func (c UpdateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to update.
func (c UpdateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Patch returns the partial field update.
func (c UpdateDeliveryCommand) Patch() delivery.Patch {
	return c.patch
}
