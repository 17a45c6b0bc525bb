package commands_test

import (
	"testing"

	"logistica/internal/core/application/usecases/commands"
	"logistica/internal/core/domain/model/delivery"
	"logistica/internal/core/domain/model/kernel"
	"logistica/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDeliveryParams(t *testing.T) delivery.Params {
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

func TestNewCreateDeliveryCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(id, validDeliveryParams(t))
	require.NoError(t, err)

	assert.True(t, cmd.DeliveryID().IsEqual(id))
	assert.Equal(t, "DOC1", cmd.Params().DocumentNumber)
	require.NoError(t, cmd.Validate())
}

func TestNewCreateDeliveryCommand_InvalidID(t *testing.T) {
	_, err := commands.NewCreateDeliveryCommand(kernel.UUID{}, validDeliveryParams(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateDeliveryCommand_MissingRequiredFields(t *testing.T) {
	params := validDeliveryParams(t)
	params.Address = ""
	params.CustomerPhone = ""

	_, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), params)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "address")
	assert.Contains(t, err.Error(), "customerPhone")
}

func TestNewCreateDeliveryCommand_InvalidStatus(t *testing.T) {
	params := validDeliveryParams(t)
	params.Status = "SHIPPED"

	_, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), params)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateDeliveryCommand_NegativePaymentAmount(t *testing.T) {
	amount := -1.0
	params := validDeliveryParams(t)
	params.PaymentAmount = &amount

	_, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), params)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateDeliveryCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CreateDeliveryCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateDeliveryCommandIsNotConstructed)
}
