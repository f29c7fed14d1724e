package commands

import (
	"context"
	"time"
)

// ConfirmDeliveryCommandHandler completes a delivery after PIN verification.
// A wrong PIN leaves the order delivering and the transaction rolled back,
// so the driver can retry with the correct PIN.
type ConfirmDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation.
func NewConfirmDeliveryCommandHandler(uowFactory OrderUoWFactory, now func() time.Time) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle loads the order, verifies the PIN through the aggregate and
// persists the completed order.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
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

	if err = aggregate.ConfirmDelivery(cmd.Actor(), cmd.Pin(), h.now()); err != nil {
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
