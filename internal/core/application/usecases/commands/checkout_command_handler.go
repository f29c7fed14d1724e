package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/order"
)

// CheckoutCommandHandler handles order placement. It snapshots product name,
// price and image from the catalog into immutable order lines, decrements
// stock and stores the new order, all within one transaction. The order
// total is fixed here and never recomputed afterwards.
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	now        func() time.Time
}

// NewCheckoutCommandHandler creates a handler for order placement.
// The now function supplies the order date, usually time.Now.
func NewCheckoutCommandHandler(uowFactory CheckoutUoWFactory, now func() time.Time) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the checkout command. Any failure, including a product
// running out of stock, rolls the whole transaction back so stock and
// orders never diverge.
func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	customer, err := order.NewCustomer(cmd.Customer().ID(), cmd.Customer().Name(),
		cmd.PhoneNumber(), cmd.DeliveryAddress())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()

	items := make([]order.LineItem, 0, len(cmd.Cart()))
	for _, line := range cmd.Cart() {
		product, getErr := productRepo.Get(ctx, line.ProductID)
		if getErr != nil {
			return getErr
		}

		if decErr := product.DecrementStock(line.Quantity); decErr != nil {
			return decErr
		}

		if updErr := productRepo.Update(ctx, product); updErr != nil {
			return updErr
		}

		item, itemErr := order.NewLineItem(product.ID(), product.Name(), product.Price(),
			product.ImageURL(), line.Quantity, line.Note)
		if itemErr != nil {
			return itemErr
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), customer, items,
		cmd.DeliveryFee(), cmd.Tip(), cmd.PaymentMethod(), h.now())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
