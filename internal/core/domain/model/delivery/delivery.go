package delivery

import (
	"errors"
	"fmt"
	"time"

	"logistica/internal/core/domain/model/kernel"
	"logistica/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not created
	// through NewDelivery or RestoreDelivery. This ensures all deliveries are validated.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")
)

// Delivery is the aggregate root for a scheduled furniture drop-off (and
// optional pickup) at a customer address, tracked through a status lifecycle.
//
// Delivery maintains these invariants:
//   - Must have a valid unique identifier, immutable after creation
//   - Address, material, document number, transporter and customer phone are
//     non-empty strings
//   - Scheduled date and time are valid calendar values
//   - Status always belongs to the closed enumeration; Preparacion by default
//   - Payment amount, when present, is non-negative
//
// The document number is the customer-facing lookup key. It is intentionally
// NOT unique across deliveries: the same customer may have several orders.
//
// Status transitions are not restricted (see Status), matching how operators
// actually work: a completed delivery may be reopened to fix a mistake.
type Delivery struct {
	id kernel.UUID

	address        string
	material       string
	documentNumber string
	transporter    string
	customerPhone  string

	scheduledDate kernel.Day
	scheduledTime kernel.TimeOfDay

	customerObservations *string
	hasPickup            bool
	pickupItems          *string
	deliveredMaterials   *string

	status        Status
	isPaid        bool
	paymentAmount *float64

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// Params carries the field values for creating or restoring a delivery.
// Optional free-text fields are nil when absent. Status may be left empty on
// creation, in which case DefaultStatus is assigned.
type Params struct {
	Address              string
	Material             string
	DocumentNumber       string
	Transporter          string
	ScheduledDate        kernel.Day
	ScheduledTime        kernel.TimeOfDay
	CustomerObservations *string
	CustomerPhone        string
	HasPickup            bool
	PickupItems          *string
	DeliveredMaterials   *string
	Status               Status
	IsPaid               bool
	PaymentAmount        *float64
}

// NewDelivery creates a new Delivery with validation. This is the only way to
// create a delivery (besides RestoreDelivery for persistence), ensuring all
// business invariants hold.
//
// All required fields are validated together and every violation is reported,
// not just the first one. Creation and update timestamps are set to the
// current UTC time.
func NewDelivery(id kernel.UUID, params Params) (*Delivery, error) {
	now := time.Now().UTC()
	d := &Delivery{
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := d.apply(id, params); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistence with its original
// identifier and timestamps. The same field validation as NewDelivery applies,
// guarding against corrupted rows.
func RestoreDelivery(id kernel.UUID, params Params, createdAt, updatedAt time.Time) (*Delivery, error) {
	d := &Delivery{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := d.apply(id, params); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Delivery) apply(id kernel.UUID, params Params) error {
	return errors.Join(
		d.setID(id),
		d.setAddress(params.Address),
		d.setMaterial(params.Material),
		d.setDocumentNumber(params.DocumentNumber),
		d.setTransporter(params.Transporter),
		d.setScheduledDate(params.ScheduledDate),
		d.setScheduledTime(params.ScheduledTime),
		d.setCustomerPhone(params.CustomerPhone),
		d.setStatus(params.Status),
		d.setPaymentAmount(params.PaymentAmount),
		d.setOptionalFields(params),
	)
}

// Validate ensures the Delivery instance was properly constructed.
// Returns ErrDeliveryIsNotConstructed for zero-value or hand-built instances.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// Address returns the destination address.
func (d *Delivery) Address() string {
	return d.address
}

// Material returns the description of the material being delivered.
func (d *Delivery) Material() string {
	return d.material
}

// DocumentNumber returns the customer document number used for public lookup.
func (d *Delivery) DocumentNumber() string {
	return d.documentNumber
}

// Transporter returns the assigned transporter's name.
func (d *Delivery) Transporter() string {
	return d.transporter
}

// ScheduledDate returns the calendar date the delivery is scheduled for.
func (d *Delivery) ScheduledDate() kernel.Day {
	return d.scheduledDate
}

// ScheduledTime returns the clock time the delivery is scheduled for.
func (d *Delivery) ScheduledTime() kernel.TimeOfDay {
	return d.scheduledTime
}

// CustomerObservations returns optional notes from the customer, nil when absent.
func (d *Delivery) CustomerObservations() *string {
	return d.customerObservations
}

// CustomerPhone returns the customer's contact phone.
func (d *Delivery) CustomerPhone() string {
	return d.customerPhone
}

// HasPickup reports whether old material has to be collected from the customer.
func (d *Delivery) HasPickup() bool {
	return d.hasPickup
}

// PickupItems returns the description of items to pick up, nil when absent.
func (d *Delivery) PickupItems() *string {
	return d.pickupItems
}

// DeliveredMaterials returns the description of materials actually delivered, nil when absent.
func (d *Delivery) DeliveredMaterials() *string {
	return d.deliveredMaterials
}

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// IsPaid reports whether the delivery has been paid for.
func (d *Delivery) IsPaid() bool {
	return d.isPaid
}

// PaymentAmount returns the pending payment amount, nil when nothing is owed.
// A zero or absent amount means nothing owed.
func (d *Delivery) PaymentAmount() *float64 {
	return d.paymentAmount
}

// CreatedAt returns the creation timestamp (UTC).
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns the last modification timestamp (UTC).
func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

// IsDelayed reports whether the delivery is scheduled strictly before the
// given day and has not reached the terminal status.
func (d *Delivery) IsDelayed(today kernel.Day) bool {
	return d.scheduledDate.Before(today) && !d.status.IsTerminal()
}

// Patch carries a partial update. Nil fields are left unchanged; non-nil
// fields are validated and overwrite the current value (shallow merge).
type Patch struct {
	Address              *string
	Material             *string
	DocumentNumber       *string
	Transporter          *string
	ScheduledDate        *kernel.Day
	ScheduledTime        *kernel.TimeOfDay
	CustomerObservations *string
	CustomerPhone        *string
	HasPickup            *bool
	PickupItems          *string
	DeliveredMaterials   *string
	Status               *Status
	IsPaid               *bool
	PaymentAmount        *float64
}

// Update applies a partial update to the delivery. Supplied fields are
// validated against the same per-field rules as creation; omitted fields stay
// unchanged. The patch is applied atomically: a validation failure leaves the
// aggregate untouched. The update timestamp is bumped even when the patch is
// empty, matching storage-level update semantics.
func (d *Delivery) Update(patch Patch) error {
	updated := *d
	var errsList []error

	if patch.Address != nil {
		errsList = append(errsList, updated.setAddress(*patch.Address))
	}
	if patch.Material != nil {
		errsList = append(errsList, updated.setMaterial(*patch.Material))
	}
	if patch.DocumentNumber != nil {
		errsList = append(errsList, updated.setDocumentNumber(*patch.DocumentNumber))
	}
	if patch.Transporter != nil {
		errsList = append(errsList, updated.setTransporter(*patch.Transporter))
	}
	if patch.ScheduledDate != nil {
		errsList = append(errsList, updated.setScheduledDate(*patch.ScheduledDate))
	}
	if patch.ScheduledTime != nil {
		errsList = append(errsList, updated.setScheduledTime(*patch.ScheduledTime))
	}
	if patch.CustomerPhone != nil {
		errsList = append(errsList, updated.setCustomerPhone(*patch.CustomerPhone))
	}
	if patch.Status != nil {
		errsList = append(errsList, updated.setStatus(*patch.Status))
	}
	if patch.PaymentAmount != nil {
		errsList = append(errsList, updated.setPaymentAmount(patch.PaymentAmount))
	}

	if err := errors.Join(errsList...); err != nil {
		return err
	}

	if patch.CustomerObservations != nil {
		updated.customerObservations = patch.CustomerObservations
	}
	if patch.HasPickup != nil {
		updated.hasPickup = *patch.HasPickup
	}
	if patch.PickupItems != nil {
		updated.pickupItems = patch.PickupItems
	}
	if patch.DeliveredMaterials != nil {
		updated.deliveredMaterials = patch.DeliveredMaterials
	}
	if patch.IsPaid != nil {
		updated.isPaid = *patch.IsPaid
	}

	updated.touch()
	*d = updated
	return nil
}

// Complete marks the delivery as handed over and settled: status becomes
// Completado, the paid flag is set and the pending amount is zeroed. This is
// a deliberate shortcut meaning "payment was collected on delivery"; it runs
// regardless of the current state and does not verify that an amount was
// actually collected.
func (d *Delivery) Complete() {
	zero := float64(0)
	d.status = Completado
	d.isPaid = true
	d.paymentAmount = &zero
	d.touch()
}

func (d *Delivery) touch() {
	d.updatedAt = time.Now().UTC()
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	d.id = id
	return nil
}

func (d *Delivery) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	d.address = address
	return nil
}

func (d *Delivery) setMaterial(material string) error {
	if material == "" {
		return errs.NewValueIsRequiredError("material")
	}

	d.material = material
	return nil
}

func (d *Delivery) setDocumentNumber(documentNumber string) error {
	if documentNumber == "" {
		return errs.NewValueIsRequiredError("documentNumber")
	}

	d.documentNumber = documentNumber
	return nil
}

func (d *Delivery) setTransporter(transporter string) error {
	if transporter == "" {
		return errs.NewValueIsRequiredError("transporter")
	}

	d.transporter = transporter
	return nil
}

func (d *Delivery) setScheduledDate(day kernel.Day) error {
	if err := day.Validate(); err != nil {
		return err
	}

	d.scheduledDate = day
	return nil
}

func (d *Delivery) setScheduledTime(tod kernel.TimeOfDay) error {
	if err := tod.Validate(); err != nil {
		return err
	}

	d.scheduledTime = tod
	return nil
}

func (d *Delivery) setCustomerPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customerPhone")
	}

	d.customerPhone = phone
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if status == "" {
		d.status = DefaultStatus
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}

	d.status = status
	return nil
}

func (d *Delivery) setPaymentAmount(amount *float64) error {
	if amount != nil && *amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("paymentAmount",
			fmt.Errorf("%v is negative, amount must be zero or positive", *amount))
	}

	d.paymentAmount = amount
	return nil
}

func (d *Delivery) setOptionalFields(params Params) error {
	d.customerObservations = params.CustomerObservations
	d.hasPickup = params.HasPickup
	d.pickupItems = params.PickupItems
	d.deliveredMaterials = params.DeliveredMaterials
	d.isPaid = params.IsPaid
	return nil
}
