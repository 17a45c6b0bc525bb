package queries

import (
	"errors"

	"logistica/internal/core/domain/model/kernel"
	"logistica/internal/pkg/guard"
)

var (
	ErrGetDeliveriesByDateQueryIsNotConstructed = errors.New(
		"GetDeliveriesByDateQuery must be created via NewGetDeliveriesByDateQuery constructor",
	)
)

// GetDeliveriesByDateQuery retrieves the deliveries scheduled for a single
// day, ordered by scheduled time. Used by dispatchers to build the daily
// route sheet.
type GetDeliveriesByDateQuery struct {
	date  kernel.Day
	guard guard.ConstructorGuard
}

// NewGetDeliveriesByDateQuery creates a query for one day's deliveries.
// The day must be a constructed kernel.Day value.
func NewGetDeliveriesByDateQuery(date kernel.Day) (GetDeliveriesByDateQuery, error) {
	if err := date.Validate(); err != nil {
		return GetDeliveriesByDateQuery{}, err
	}

	return GetDeliveriesByDateQuery{
		date:  date,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Date returns the day the query targets.
func (q GetDeliveriesByDateQuery) Date() kernel.Day {
	return q.date
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveriesByDateQueryIsNotConstructed if validation fails.
func (q GetDeliveriesByDateQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesByDateQueryIsNotConstructed)
}
