package delivery

import (
	"fmt"

	"logistica/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery. The value is a closed
// enumeration whose wire representation equals its storage representation.
//
// The nominal happy path is:
//
//	Preparacion ──> Transito ──> Reparto ──> Completado
//
// The three error states (ErrorLlamada, Ausente, ErrorPedido) are reachable
// from any non-terminal state when a delivery attempt fails.
//
// Transitions are deliberately unconstrained: any update may move a delivery
// to any valid status, including reopening a completed one. Operators rely on
// this to correct mistakes, so no transition guard is enforced here.
type Status string

const (
	// Preparacion is the initial status: the order is being prepared in the warehouse.
	Preparacion Status = "PREPARACION"

	// Transito indicates the delivery is on the road towards the destination area.
	Transito Status = "TRANSITO"

	// Reparto indicates the delivery is out for final drop-off at the customer address.
	Reparto Status = "REPARTO"

	// ErrorLlamada indicates the customer could not be reached by phone.
	ErrorLlamada Status = "ERROR_LLAMADA"

	// Ausente indicates the customer was absent at the scheduled time.
	Ausente Status = "AUSENTE"

	// ErrorPedido indicates a problem with the order itself.
	ErrorPedido Status = "ERROR_PEDIDO"

	// Completado indicates the delivery was handed over. This is the sole
	// terminal state for reporting purposes: completed deliveries are never
	// counted as delayed.
	Completado Status = "COMPLETADO"
)

// DefaultStatus is assigned on creation when no status is supplied.
const DefaultStatus = Preparacion

// getValidStatuses returns the closed set of valid Status values.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Preparacion:  {},
		Transito:     {},
		Reparto:      {},
		ErrorLlamada: {},
		Ausente:      {},
		ErrorPedido:  {},
		Completado:   {},
	}
}

// Validate checks if the Status value belongs to the closed enumeration.
// The empty string and any unknown value are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status is Completado.
func (s Status) IsTerminal() bool {
	return s == Completado
}
