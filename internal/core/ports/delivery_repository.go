package ports

import (
	"context"

	"logistica/internal/core/domain/model/delivery"
	"logistica/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Read models for listing and reporting live on the query side; the repository
// only covers the operations commands need.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	// Returns an ObjectNotFoundError when the delivery does not exist.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when the delivery does not exist.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// Delete removes a delivery permanently.
	// Returns an ObjectNotFoundError when the delivery does not exist.
	Delete(ctx context.Context, id kernel.UUID) error
}
