package commands

import (
	"context"
	"time"
)

// MarkOrderReadyCommandHandler marks a cooking order as ready for pickup.
type MarkOrderReadyCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewMarkOrderReadyCommandHandler creates a handler for marking orders ready.
func NewMarkOrderReadyCommandHandler(uowFactory OrderUoWFactory, now func() time.Time) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle loads the order, applies the transition and persists the result.
func (h MarkOrderReadyCommandHandler) Handle(ctx context.Context, cmd MarkOrderReadyCommand) error {
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

	if err = aggregate.MarkReady(cmd.Actor(), h.now()); err != nil {
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
