package order

import (
	"fmt"
	"math/rand/v2"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// pinLength is the number of digits in a delivery confirmation PIN.
const pinLength = 4

// ErrPinIsNotConstructed is returned when attempting to use an improperly
// initialized Pin. Pins must be created via NewRandomPin or PinFromString.
var ErrPinIsNotConstructed = errs.NewValueIsRequiredError(
	"pin must be created via NewRandomPin or PinFromString constructors")

// Pin is the 4-digit delivery confirmation code generated at order creation.
// It is immutable and compared exactly: only the driver holding the matching
// code reported by the customer can complete a delivery.
//
// Pins are scoped per-order and are not checked for uniqueness across
// orders; they are only ever compared within a single known order context.
type Pin struct { //nolint:recvcheck //using for validation
	digits string
	guard  guard.ConstructorGuard
}

// NewRandomPin generates a random 4-digit PIN. Leading zeros are preserved,
// so "0042" is a valid PIN.
func NewRandomPin() Pin {
	return Pin{
		digits: fmt.Sprintf("%04d", rand.IntN(10000)), //nolint:gosec // order-scoped code, not a credential
		guard:  guard.NewConstructorGuard(),
	}
}

// PinFromString reconstructs a Pin from its stored representation.
// The input must be exactly four ASCII digits.
func PinFromString(s string) (Pin, error) {
	if len(s) != pinLength {
		return Pin{}, errs.NewValueIsInvalidErrorWithCause("pin",
			fmt.Errorf("pin must be %d digits", pinLength))
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return Pin{}, errs.NewValueIsInvalidErrorWithCause("pin",
				fmt.Errorf("pin must contain only digits"))
		}
	}

	return Pin{
		digits: s,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Pin was created through a constructor.
func (p Pin) Validate() error {
	return p.guard.Validate(ErrPinIsNotConstructed)
}

// String returns the PIN digits, including leading zeros.
func (p Pin) String() string {
	return p.digits
}

// Matches reports whether the supplied code exactly equals the PIN.
// Comparison is case-sensitive and exact; "42" never matches "0042".
func (p Pin) Matches(candidate string) bool {
	return p.digits == candidate
}
