package queries

import (
	"context"

	"logistica/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// GetDeliveryStatsQueryHandler computes the delayed and unpaid dashboard
// figures from the database. Both figures are built from full-projection
// rows so the dashboard can show the offending deliveries, not just counts.
type GetDeliveryStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryStatsQueryHandler creates a handler for stats queries.
// Requires a GORM database connection for query execution.
func NewGetDeliveryStatsQueryHandler(db *gorm.DB) GetDeliveryStatsQueryHandler {
	return GetDeliveryStatsQueryHandler{db: db}
}

// Handle executes both stats computations.
// Delayed deliveries are those scheduled strictly before the reference day
// and not yet completed, oldest first. Unpaid deliveries are those with
// is_paid false and a positive amount; the total is summed over exactly
// that set.
func (h GetDeliveryStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryStatsQuery,
) (GetDeliveryStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryStatsQueryResponse{}, err
	}

	delayed, err := h.delayedDeliveries(ctx, query)
	if err != nil {
		return GetDeliveryStatsQueryResponse{}, err
	}

	unpaid, err := h.unpaidDeliveries(ctx)
	if err != nil {
		return GetDeliveryStatsQueryResponse{}, err
	}

	return GetDeliveryStatsQueryResponse{Delayed: delayed, Unpaid: unpaid}, nil
}

func (h GetDeliveryStatsQueryHandler) delayedDeliveries(
	ctx context.Context,
	query GetDeliveryStatsQuery,
) (DelayedDeliveriesStats, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE scheduled_date < ? AND status <> ?
		ORDER BY scheduled_date ASC
	`, query.Today().String(), delivery.Completado.String()).Rows()
	if err != nil {
		return DelayedDeliveriesStats{}, err
	}

	deliveries, err := collectDeliveryRows(rows)
	if err != nil {
		return DelayedDeliveriesStats{}, err
	}

	return DelayedDeliveriesStats{
		Count:      len(deliveries),
		Deliveries: deliveries,
	}, nil
}

func (h GetDeliveryStatsQueryHandler) unpaidDeliveries(
	ctx context.Context,
) (UnpaidDeliveriesStats, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE is_paid = false AND payment_amount > 0
		ORDER BY scheduled_date ASC
	`).Rows()
	if err != nil {
		return UnpaidDeliveriesStats{}, err
	}

	deliveries, err := collectDeliveryRows(rows)
	if err != nil {
		return UnpaidDeliveriesStats{}, err
	}

	// Summed in Go over exactly the selected rows; the filter guarantees
	// PaymentAmount is non-nil and positive.
	var total float64
	for _, d := range deliveries {
		if d.PaymentAmount != nil {
			total += *d.PaymentAmount
		}
	}

	return UnpaidDeliveriesStats{
		Count:       len(deliveries),
		TotalAmount: total,
		Deliveries:  deliveries,
	}, nil
}
