package commands

import (
	"context"
	"time"
)

// AcceptDeliveryCommandHandler moves a ready order onto the road with its
// assigned driver.
type AcceptDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewAcceptDeliveryCommandHandler creates a handler for delivery pickup.
func NewAcceptDeliveryCommandHandler(uowFactory OrderUoWFactory, now func() time.Time) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle loads the order, applies the transition and persists the result.
func (h AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) error {
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

	if err = aggregate.AcceptDelivery(cmd.Actor(), h.now()); err != nil {
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
