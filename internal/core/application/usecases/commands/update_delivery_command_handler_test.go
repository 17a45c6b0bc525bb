package commands_test

import (
	"testing"

	"logistica/internal/core/application/usecases/commands"
	"logistica/internal/core/domain/model/delivery"
	"logistica/internal/core/domain/model/kernel"
	"logistica/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedDelivery(t *testing.T, id kernel.UUID) *delivery.Delivery {
	t.Helper()

	d, err := delivery.NewDelivery(id, validDeliveryParams(t))
	require.NoError(t, err)
	return d
}

func TestUpdateDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	existing := storedDelivery(t, id)

	newStatus := delivery.Transito
	cmd, err := commands.NewUpdateDeliveryCommand(id, delivery.Patch{Status: &newStatus})
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, delivery.Transito, updated.Status())
	assert.Equal(t, "Main St 1", updated.Address()) // untouched field
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateDeliveryCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateDeliveryCommand(id, delivery.Patch{})
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("delivery", id.String())
	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateDeliveryCommandHandler_Handle_InvalidPatch(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	existing := storedDelivery(t, id)

	empty := ""
	cmd, err := commands.NewUpdateDeliveryCommand(id, delivery.Patch{Transporter: &empty})
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
