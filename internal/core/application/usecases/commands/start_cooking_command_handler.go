package commands

import (
	"context"
	"time"
)

// StartCookingCommandHandler moves a pending order into cooking.
type StartCookingCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewStartCookingCommandHandler creates a handler for starting the kitchen
// work on an order.
func NewStartCookingCommandHandler(uowFactory OrderUoWFactory, now func() time.Time) StartCookingCommandHandler {
	return StartCookingCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle loads the order, applies the transition and persists the result.
// Authorization and lifecycle rules live in the order aggregate, so an
// invalid move or a forbidden caller surfaces as the aggregate's error and
// rolls the transaction back.
func (h StartCookingCommandHandler) Handle(ctx context.Context, cmd StartCookingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.StartCooking(cmd.Actor(), h.now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
