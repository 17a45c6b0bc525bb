package queries

import (
	"context"

	"logistica/internal/core/domain/model/delivery"
	"logistica/internal/core/domain/model/kernel"
	"logistica/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchDeliveryByDocumentQueryHandler resolves public tracking lookups.
// Selects only the curated column subset so private fields never leave the
// database layer.
type SearchDeliveryByDocumentQueryHandler struct {
	db *gorm.DB
}

// NewSearchDeliveryByDocumentQueryHandler creates a handler for public
// tracking queries. Requires a GORM database connection for query execution.
func NewSearchDeliveryByDocumentQueryHandler(db *gorm.DB) SearchDeliveryByDocumentQueryHandler {
	return SearchDeliveryByDocumentQueryHandler{db: db}
}

// Handle executes the lookup. When several deliveries share the document
// number, the one inserted first is returned. Returns an ObjectNotFoundError
// when no delivery matches.
func (h SearchDeliveryByDocumentQueryHandler) Handle(
	ctx context.Context,
	query SearchDeliveryByDocumentQuery,
) (SearchDeliveryByDocumentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return SearchDeliveryByDocumentQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			address,
			material,
			document_number,
			transporter,
			scheduled_date,
			scheduled_time,
			customer_observations,
			pickup_items,
			delivered_materials,
			has_pickup,
			status,
			is_paid,
			payment_amount,
			created_at
		FROM deliveries
		WHERE document_number = ?
		ORDER BY created_at ASC
		LIMIT 1
	`, query.DocumentNumber()).Rows()
	if err != nil {
		return SearchDeliveryByDocumentQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return SearchDeliveryByDocumentQueryResponse{}, err
		}
		return SearchDeliveryByDocumentQueryResponse{},
			errs.NewObjectNotFoundError("documentNumber", query.DocumentNumber())
	}

	var response SearchDeliveryByDocumentQueryResponse
	var id uuid.UUID
	var scheduledDate, scheduledTime, status string

	err = rows.Scan(
		&id,
		&response.Address,
		&response.Material,
		&response.DocumentNumber,
		&response.Transporter,
		&scheduledDate,
		&scheduledTime,
		&response.CustomerObservations,
		&response.PickupItems,
		&response.DeliveredMaterials,
		&response.HasPickup,
		&status,
		&response.IsPaid,
		&response.PaymentAmount,
		&response.CreatedAt,
	)
	if err != nil {
		return SearchDeliveryByDocumentQueryResponse{}, err
	}

	deliveryID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return SearchDeliveryByDocumentQueryResponse{}, err
	}
	response.ID = deliveryID

	day, err := kernel.NewDay(scheduledDate)
	if err != nil {
		return SearchDeliveryByDocumentQueryResponse{}, err
	}
	response.ScheduledDate = day

	timeOfDay, err := kernel.NewTimeOfDay(scheduledTime)
	if err != nil {
		return SearchDeliveryByDocumentQueryResponse{}, err
	}
	response.ScheduledTime = timeOfDay

	response.Status = delivery.Status(status)
	if err = response.Status.Validate(); err != nil {
		return SearchDeliveryByDocumentQueryResponse{}, err
	}

	return response, nil
}
