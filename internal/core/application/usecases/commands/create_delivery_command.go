package commands

import (
	"errors"

	"logistica/internal/core/domain/model/delivery"
	"logistica/internal/core/domain/model/kernel"
	"logistica/internal/pkg/errs"
	"logistica/internal/pkg/guard"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
)

// CreateDeliveryCommand represents a request to register a new delivery.
// It carries the full set of delivery fields; the status may be left empty,
// in which case the delivery starts in Preparacion.
type CreateDeliveryCommand struct {
	deliveryID kernel.UUID
	params     delivery.Params

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to register a new delivery.
// Validates that the identifier is valid and that all required fields are
// present per the per-field rules: address, material, document number,
// transporter and customer phone non-empty; scheduled date and time supplied;
// status empty or a valid enumeration value; payment amount non-negative when
// present. All violations are reported together.
func NewCreateDeliveryCommand(deliveryID kernel.UUID, params delivery.Params) (CreateDeliveryCommand, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		validateParams(params),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return CreateDeliveryCommand{
		deliveryID: deliveryID,
		params:     params,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDeliveryCommandIsNotConstructed if validation fails.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier assigned to the new delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Params returns the delivery field values.
func (c CreateDeliveryCommand) Params() delivery.Params {
	return c.params
}

func validateParams(params delivery.Params) error {
	var errsList []error

	if params.Address == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError("address"))
	}
	if params.Material == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError("material"))
	}
	if params.DocumentNumber == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError("documentNumber"))
	}
	if params.Transporter == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError("transporter"))
	}
	if params.CustomerPhone == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError("customerPhone"))
	}
	errsList = append(errsList,
		params.ScheduledDate.Validate(),
		params.ScheduledTime.Validate(),
	)
	if params.Status != "" {
		errsList = append(errsList, params.Status.Validate())
	}
	if params.PaymentAmount != nil && *params.PaymentAmount < 0 {
		errsList = append(errsList, errs.NewValueIsInvalidError("paymentAmount"))
	}

	return errors.Join(errsList...)
}
