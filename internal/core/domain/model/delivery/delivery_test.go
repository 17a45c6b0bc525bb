package delivery_test

import (
	"testing"
	"time"

	"logistica/internal/core/domain/model/delivery"
	"logistica/internal/core/domain/model/kernel"
	"logistica/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams(t *testing.T) delivery.Params {
	t.Helper()

	day, err := kernel.NewDay("2024-01-01")
	require.NoError(t, err)
	tod, err := kernel.NewTimeOfDay("10:00")
	require.NoError(t, err)

	return delivery.Params{
		Address:        "Main St 1",
		Material:       "Sofa",
		DocumentNumber: "DOC1",
		Transporter:    "Joe",
		ScheduledDate:  day,
		ScheduledTime:  tod,
		CustomerPhone:  "555",
		HasPickup:      false,
	}
}

func TestNewDelivery_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	d, err := delivery.NewDelivery(id, validParams(t))
	require.NoError(t, err)

	assert.True(t, d.ID().IsEqual(id))
	assert.Equal(t, "Main St 1", d.Address())
	assert.Equal(t, "Sofa", d.Material())
	assert.Equal(t, "DOC1", d.DocumentNumber())
	assert.Equal(t, "Joe", d.Transporter())
	assert.Equal(t, "2024-01-01", d.ScheduledDate().String())
	assert.Equal(t, "10:00", d.ScheduledTime().String())
	assert.Equal(t, "555", d.CustomerPhone())
	assert.False(t, d.HasPickup())
	assert.False(t, d.IsPaid())
	assert.Nil(t, d.PaymentAmount())
	assert.False(t, d.CreatedAt().IsZero())
	assert.Equal(t, d.CreatedAt(), d.UpdatedAt())
}

func TestNewDelivery_StatusDefaultsToPreparacion(t *testing.T) {
	d, err := delivery.NewDelivery(kernel.NewUUID(), validParams(t))
	require.NoError(t, err)
	assert.Equal(t, delivery.Preparacion, d.Status())
}

func TestNewDelivery_ExplicitStatusIsKept(t *testing.T) {
	params := validParams(t)
	params.Status = delivery.Transito

	d, err := delivery.NewDelivery(kernel.NewUUID(), params)
	require.NoError(t, err)
	assert.Equal(t, delivery.Transito, d.Status())
}

func TestNewDelivery_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*delivery.Params)
	}{
		{"empty_address", func(p *delivery.Params) { p.Address = "" }},
		{"empty_material", func(p *delivery.Params) { p.Material = "" }},
		{"empty_document_number", func(p *delivery.Params) { p.DocumentNumber = "" }},
		{"empty_transporter", func(p *delivery.Params) { p.Transporter = "" }},
		{"empty_customer_phone", func(p *delivery.Params) { p.CustomerPhone = "" }},
		{"missing_scheduled_date", func(p *delivery.Params) { p.ScheduledDate = kernel.Day{} }},
		{"missing_scheduled_time", func(p *delivery.Params) { p.ScheduledTime = kernel.TimeOfDay{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParams(t)
			tt.mutate(&params)

			_, err := delivery.NewDelivery(kernel.NewUUID(), params)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		})
	}
}

func TestNewDelivery_AllViolationsReported(t *testing.T) {
	params := validParams(t)
	params.Address = ""
	params.Material = ""

	_, err := delivery.NewDelivery(kernel.NewUUID(), params)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "address")
	assert.Contains(t, err.Error(), "material")
}

func TestNewDelivery_InvalidStatus(t *testing.T) {
	params := validParams(t)
	params.Status = "LOST"

	_, err := delivery.NewDelivery(kernel.NewUUID(), params)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewDelivery_NegativePaymentAmount(t *testing.T) {
	amount := -10.0
	params := validParams(t)
	params.PaymentAmount = &amount

	_, err := delivery.NewDelivery(kernel.NewUUID(), params)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewDelivery_InvalidID(t *testing.T) {
	_, err := delivery.NewDelivery(kernel.UUID{}, validParams(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestDelivery_Validate(t *testing.T) {
	var notConstructed delivery.Delivery
	require.ErrorIs(t, notConstructed.Validate(), delivery.ErrDeliveryIsNotConstructed)

	d, err := delivery.NewDelivery(kernel.NewUUID(), validParams(t))
	require.NoError(t, err)
	require.NoError(t, d.Validate())
}

func TestDelivery_Update_ShallowMerge(t *testing.T) {
	d, err := delivery.NewDelivery(kernel.NewUUID(), validParams(t))
	require.NoError(t, err)

	newTransporter := "Maria"
	newStatus := delivery.Transito
	require.NoError(t, d.Update(delivery.Patch{
		Transporter: &newTransporter,
		Status:      &newStatus,
	}))

	// Supplied fields overwritten, omitted fields untouched.
	assert.Equal(t, "Maria", d.Transporter())
	assert.Equal(t, delivery.Transito, d.Status())
	assert.Equal(t, "Main St 1", d.Address())
	assert.Equal(t, "DOC1", d.DocumentNumber())
}

func TestDelivery_Update_ValidatesSuppliedFields(t *testing.T) {
	d, err := delivery.NewDelivery(kernel.NewUUID(), validParams(t))
	require.NoError(t, err)

	empty := ""
	err = d.Update(delivery.Patch{Address: &empty})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	// Failed update leaves the aggregate untouched.
	assert.Equal(t, "Main St 1", d.Address())
}

func TestDelivery_Update_BumpsUpdatedAt(t *testing.T) {
	d, err := delivery.NewDelivery(kernel.NewUUID(), validParams(t))
	require.NoError(t, err)
	before := d.UpdatedAt()

	time.Sleep(time.Millisecond)
	require.NoError(t, d.Update(delivery.Patch{}))

	assert.True(t, d.UpdatedAt().After(before))
	assert.Equal(t, before, d.CreatedAt())
}

func TestDelivery_Update_AllowsAnyStatusTransition(t *testing.T) {
	d, err := delivery.NewDelivery(kernel.NewUUID(), validParams(t))
	require.NoError(t, err)

	d.Complete()
	require.Equal(t, delivery.Completado, d.Status())

	// Terminal state can be reopened: transitions are unconstrained.
	reopened := delivery.Preparacion
	require.NoError(t, d.Update(delivery.Patch{Status: &reopened}))
	assert.Equal(t, delivery.Preparacion, d.Status())
}

func TestDelivery_Complete(t *testing.T) {
	amount := 150.0
	params := validParams(t)
	params.Status = delivery.Transito
	params.PaymentAmount = &amount

	d, err := delivery.NewDelivery(kernel.NewUUID(), params)
	require.NoError(t, err)
	require.False(t, d.IsPaid())

	d.Complete()

	assert.Equal(t, delivery.Completado, d.Status())
	assert.True(t, d.IsPaid())
	require.NotNil(t, d.PaymentAmount())
	assert.Zero(t, *d.PaymentAmount())
}

func TestDelivery_IsDelayed(t *testing.T) {
	today, err := kernel.NewDay("2024-01-02")
	require.NoError(t, err)

	d, err := delivery.NewDelivery(kernel.NewUUID(), validParams(t)) // scheduled 2024-01-01
	require.NoError(t, err)

	assert.True(t, d.IsDelayed(today))

	// Scheduled today is never delayed.
	sameDay, err := kernel.NewDay("2024-01-01")
	require.NoError(t, err)
	assert.False(t, d.IsDelayed(sameDay))

	// Completed deliveries are never delayed.
	d.Complete()
	assert.False(t, d.IsDelayed(today))
}

func TestRestoreDelivery(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

	d, err := delivery.RestoreDelivery(kernel.NewUUID(), validParams(t), createdAt, updatedAt)
	require.NoError(t, err)

	assert.Equal(t, createdAt, d.CreatedAt())
	assert.Equal(t, updatedAt, d.UpdatedAt())
	require.NoError(t, d.Validate())
}
