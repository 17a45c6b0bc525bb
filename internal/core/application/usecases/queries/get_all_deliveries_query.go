// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"logistica/internal/pkg/guard"
)

var (
	ErrGetAllDeliveriesQueryIsNotConstructed = errors.New(
		"GetAllDeliveriesQuery must be created via NewGetAllDeliveriesQuery constructor",
	)
)

// GetAllDeliveriesQuery retrieves every delivery in the system for the
// authenticated back office, most recently scheduled first.
//
// Example:
//
//	query := NewGetAllDeliveriesQuery()
//	handler := NewGetAllDeliveriesQueryHandler(db)
//
//	deliveries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve deliveries: %w", err)
//	}
//
//	for _, d := range deliveries {
//	    fmt.Printf("%s scheduled for %s\n", d.DocumentNumber, d.ScheduledDate)
//	}
type GetAllDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllDeliveriesQuery creates a query to retrieve all deliveries.
// This is a parameterless query that fetches the complete delivery list.
func NewGetAllDeliveriesQuery() GetAllDeliveriesQuery {
	return GetAllDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllDeliveriesQueryIsNotConstructed if validation fails.
func (q GetAllDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDeliveriesQueryIsNotConstructed)
}
