package kernel

import (
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money value. Money must be created via NewMoney or ZeroMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or ZeroMoney constructors")

// Money represents a non-negative monetary amount in the smallest currency
// unit. It is an immutable value object; arithmetic methods return new
// instances and never mutate the receiver.
//
// The zero value of Money is invalid and will fail validation - use the
// constructors to create instances.
//
// Example:
//
//	price, err := kernel.NewMoney(10000)
//	if err != nil {
//	    // handle validation error
//	}
//	total := price.MulQuantity(2) // Money{20000}
type Money struct { //nolint:recvcheck //using for validation
	amount int64
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from an amount in the smallest currency
// unit. Negative amounts are rejected.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// ZeroMoney returns a valid Money value of zero.
func ZeroMoney() Money {
	m, _ := NewMoney(0)
	return m
}

// Validate checks if the Money value was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the raw amount in the smallest currency unit.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns a new Money holding the sum of both amounts.
func (m Money) Add(other Money) Money {
	sum, _ := NewMoney(m.amount + other.amount)
	return sum
}

// Sub returns the difference of both amounts. Returns an error when the
// result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	return NewMoney(m.amount - other.amount)
}

// MulQuantity returns the amount multiplied by a line-item quantity.
func (m Money) MulQuantity(quantity int) Money {
	result, _ := NewMoney(m.amount * int64(quantity))
	return result
}

// IsEqual compares two Money values by amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String renders the raw amount, primarily for logs and error messages.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}
