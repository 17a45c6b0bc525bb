package queries

import (
	"errors"

	"logistica/internal/core/domain/model/kernel"
	"logistica/internal/pkg/guard"
)

var (
	ErrGetDeliveryStatsQueryIsNotConstructed = errors.New(
		"GetDeliveryStatsQuery must be created via NewGetDeliveryStatsQuery constructor",
	)
)

// GetDeliveryStatsQuery computes the operational dashboard figures: which
// deliveries are delayed relative to a reference day, and which remain
// unpaid with money outstanding.
//
// The reference day is a query parameter rather than an implicit clock read
// so callers control the boundary: a delivery scheduled on the reference day
// itself is never delayed.
type GetDeliveryStatsQuery struct {
	today kernel.Day
	guard guard.ConstructorGuard
}

// NewGetDeliveryStatsQuery creates a stats query relative to the given day.
func NewGetDeliveryStatsQuery(today kernel.Day) (GetDeliveryStatsQuery, error) {
	if err := today.Validate(); err != nil {
		return GetDeliveryStatsQuery{}, err
	}

	return GetDeliveryStatsQuery{
		today: today,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Today returns the reference day for the delayed computation.
func (q GetDeliveryStatsQuery) Today() kernel.Day {
	return q.today
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryStatsQueryIsNotConstructed if validation fails.
func (q GetDeliveryStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryStatsQueryIsNotConstructed)
}

// DelayedDeliveriesStats lists deliveries whose scheduled date has passed
// without the delivery reaching the completed status.
type DelayedDeliveriesStats struct {
	Count      int
	Deliveries []DeliveryReadModel
}

// UnpaidDeliveriesStats lists deliveries that are not paid and still have a
// positive amount outstanding, together with the exact total.
type UnpaidDeliveriesStats struct {
	Count       int
	TotalAmount float64
	Deliveries  []DeliveryReadModel
}

// GetDeliveryStatsQueryResponse aggregates both dashboard figures.
type GetDeliveryStatsQueryResponse struct {
	Delayed DelayedDeliveriesStats
	Unpaid  UnpaidDeliveriesStats
}
