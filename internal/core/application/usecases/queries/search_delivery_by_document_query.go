package queries

import (
	"errors"
	"strings"
	"time"

	"logistica/internal/core/domain/model/delivery"
	"logistica/internal/core/domain/model/kernel"
	"logistica/internal/pkg/errs"
	"logistica/internal/pkg/guard"
)

var (
	ErrSearchDeliveryByDocumentQueryIsNotConstructed = errors.New(
		"SearchDeliveryByDocumentQuery must be created via NewSearchDeliveryByDocumentQuery constructor",
	)
)

// SearchDeliveryByDocumentQuery looks up a delivery by the customer's
// document number. This is the public tracking entry point and requires no
// authentication, so the response is a curated subset of the record: the
// customer phone and internal timestamps are never exposed.
//
// The document number is not unique at the storage layer. When several
// deliveries share one, the oldest record wins.
type SearchDeliveryByDocumentQuery struct {
	documentNumber string
	guard          guard.ConstructorGuard
}

// NewSearchDeliveryByDocumentQuery creates a public tracking query.
// The document number must be a non-empty string.
func NewSearchDeliveryByDocumentQuery(documentNumber string) (SearchDeliveryByDocumentQuery, error) {
	if strings.TrimSpace(documentNumber) == "" {
		return SearchDeliveryByDocumentQuery{}, errs.NewValueIsRequiredError("documentNumber")
	}

	return SearchDeliveryByDocumentQuery{
		documentNumber: documentNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// DocumentNumber returns the lookup key.
func (q SearchDeliveryByDocumentQuery) DocumentNumber() string {
	return q.documentNumber
}

// Validate ensures the query was created through the constructor.
// Returns ErrSearchDeliveryByDocumentQueryIsNotConstructed if validation fails.
func (q SearchDeliveryByDocumentQuery) Validate() error {
	return q.guard.Validate(ErrSearchDeliveryByDocumentQueryIsNotConstructed)
}

// SearchDeliveryByDocumentQueryResponse is the public projection of a
// delivery. It deliberately omits the customer phone and the update
// timestamp.
type SearchDeliveryByDocumentQueryResponse struct {
	ID                   kernel.UUID
	Address              string
	Material             string
	DocumentNumber       string
	Transporter          string
	ScheduledDate        kernel.Day
	ScheduledTime        kernel.TimeOfDay
	CustomerObservations *string
	PickupItems          *string
	DeliveredMaterials   *string
	HasPickup            bool
	Status               delivery.Status
	IsPaid               bool
	PaymentAmount        *float64
	CreatedAt            time.Time
}
