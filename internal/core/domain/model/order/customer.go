package order

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created
// through the NewCustomer factory function.
var ErrCustomerIsNotConstructed = errors.New("customer must be created via NewCustomer constructor")

// Customer is the immutable snapshot of the ordering customer captured at
// checkout: identity plus the contact details the delivery needs. Later
// profile edits do not alter existing orders.
type Customer struct { //nolint:recvcheck //using for validation
	id              kernel.UUID
	name            string
	phoneNumber     string
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer snapshot for an order. The delivery
// address is required; checkout must fail when the customer profile has
// none. Name and phone number may be empty.
func NewCustomer(id kernel.UUID, name, phoneNumber, deliveryAddress string) (Customer, error) {
	if err := id.Validate(); err != nil {
		return Customer{}, err
	}
	if deliveryAddress == "" {
		return Customer{}, errs.NewValueIsRequiredError("deliveryAddress")
	}

	return Customer{
		id:              id,
		name:            name,
		phoneNumber:     phoneNumber,
		deliveryAddress: deliveryAddress,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Customer was created through the constructor.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer's unique identifier.
func (c Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name. May be empty.
func (c Customer) Name() string {
	return c.name
}

// PhoneNumber returns the customer's contact phone number. May be empty.
func (c Customer) PhoneNumber() string {
	return c.phoneNumber
}

// DeliveryAddress returns the address the order is delivered to.
func (c Customer) DeliveryAddress() string {
	return c.deliveryAddress
}
