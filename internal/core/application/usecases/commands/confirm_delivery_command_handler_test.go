package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfirmDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customer := newActor(t, kernel.RoleCustomer)
	driver := newActor(t, kernel.RoleDriver)
	aggregate := deliveringOrder(t, customer, driver)
	cmd, err := commands.NewConfirmDeliveryCommand(aggregate.ID(), driver,
		aggregate.Pin().String())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmDeliveryCommandHandler(factory, nowFunc)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.StatusDelivered, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestConfirmDeliveryCommandHandler_Handle_WrongPin(t *testing.T) {
	ctx := t.Context()
	customer := newActor(t, kernel.RoleCustomer)
	driver := newActor(t, kernel.RoleDriver)
	aggregate := deliveringOrder(t, customer, driver)

	wrongPin := "0000"
	if aggregate.Pin().Matches(wrongPin) {
		wrongPin = "0001"
	}
	cmd, err := commands.NewConfirmDeliveryCommand(aggregate.ID(), driver, wrongPin)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmDeliveryCommandHandler(factory, nowFunc)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrIncorrectPin)
	require.NotContains(t, err.Error(), aggregate.Pin().String())
	require.Equal(t, order.StatusDelivering, aggregate.Status(),
		"order stays delivering for another attempt")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestConfirmDeliveryCommandHandler_Handle_RequiresPin(t *testing.T) {
	_, err := commands.NewConfirmDeliveryCommand(kernel.NewUUID(),
		newActor(t, kernel.RoleDriver), "")
	require.Error(t, err)
}
