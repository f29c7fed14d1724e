package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CartItem is one cart line as submitted at checkout. Product name, price
// and image are looked up from the catalog during handling, never trusted
// from the client.
type CartItem struct {
	ProductID kernel.UUID
	Quantity  int
	Note      string
}

// CheckoutCommand represents a request to place a new order from a cart.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(kernel.NewUUID(), actor, "12 Main St", "555-0101",
//	    cart, 3500, 1000, "cash")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(uowFactory, time.Now)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customer        kernel.Actor
	deliveryAddress string
	phoneNumber     string
	cart            []CartItem
	deliveryFee     kernel.Money
	tip             kernel.Money
	paymentMethod   order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to place a new order. The cart must
// have at least one line with a positive quantity, charges must not be
// negative and the payment method name must be known.
func NewCheckoutCommand(orderID kernel.UUID, customer kernel.Actor,
	deliveryAddress, phoneNumber string, cart []CartItem,
	deliveryFee, tip int64, paymentMethod string) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customer),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setCart(cart),
		cmd.setCharges(deliveryFee, tip),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CheckoutCommand{}, err
	}

	cmd.phoneNumber = phoneNumber
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Customer returns the acting customer placing the order.
func (c CheckoutCommand) Customer() kernel.Actor {
	return c.customer
}

// DeliveryAddress returns where the order should be delivered.
func (c CheckoutCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// PhoneNumber returns the customer's contact number, possibly empty.
func (c CheckoutCommand) PhoneNumber() string {
	return c.phoneNumber
}

// Cart returns the submitted cart lines.
func (c CheckoutCommand) Cart() []CartItem {
	return c.cart
}

// DeliveryFee returns the delivery charge.
func (c CheckoutCommand) DeliveryFee() kernel.Money {
	return c.deliveryFee
}

// Tip returns the optional tip.
func (c CheckoutCommand) Tip() kernel.Money {
	return c.tip
}

// PaymentMethod returns the parsed payment method.
func (c CheckoutCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c *CheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutCommand) setCustomer(customer kernel.Actor) error {
	if err := customer.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}

	c.customer = customer
	return nil
}

func (c *CheckoutCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}

	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CheckoutCommand) setCart(cart []CartItem) error {
	if len(cart) == 0 {
		return errs.NewValueIsRequiredError("cart")
	}
	for _, line := range cart {
		if err := line.ProductID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("cart.productID", err)
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidError("cart.quantity")
		}
	}

	c.cart = append([]CartItem(nil), cart...)
	return nil
}

func (c *CheckoutCommand) setCharges(deliveryFee, tip int64) error {
	fee, err := kernel.NewMoney(deliveryFee)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("deliveryFee", err)
	}

	tipMoney, err := kernel.NewMoney(tip)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("tip", err)
	}

	c.deliveryFee = fee
	c.tip = tipMoney
	return nil
}

func (c *CheckoutCommand) setPaymentMethod(paymentMethod string) error {
	method, err := order.PaymentMethodFromString(paymentMethod)
	if err != nil {
		return err
	}

	c.paymentMethod = method
	return nil
}
