package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDeliveriesByDateQueryHandler retrieves one day's deliveries from the
// database, ordered by scheduled time for route planning.
type GetDeliveriesByDateQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveriesByDateQueryHandler creates a handler for daily delivery queries.
// Requires a GORM database connection for query execution.
func NewGetDeliveriesByDateQueryHandler(db *gorm.DB) GetDeliveriesByDateQueryHandler {
	return GetDeliveriesByDateQueryHandler{db: db}
}

// Handle executes the query for the requested day.
// Returns deliveries scheduled on that day ordered by scheduled time, earliest first.
func (h GetDeliveriesByDateQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesByDateQuery,
) ([]DeliveryReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE scheduled_date = ?
		ORDER BY scheduled_time ASC
	`, query.Date().String()).Rows()
	if err != nil {
		return nil, err
	}

	return collectDeliveryRows(rows)
}
