package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// PaymentMethod represents how the customer pays for an order.
type PaymentMethod int

const (
	// PaymentUnknown represents an invalid or undefined payment method.
	PaymentUnknown PaymentMethod = iota

	// PaymentCash is payment in cash on delivery.
	PaymentCash

	// PaymentTransfer is payment by bank transfer.
	PaymentTransfer
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentUnknown:  "unknown",
		PaymentCash:     "cash",
		PaymentTransfer: "transfer",
	}
}

// PaymentMethodFromString parses a payment method name as stored or
// transmitted externally.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	switch s {
	case "cash":
		return PaymentCash, nil
	case "transfer":
		return PaymentTransfer, nil
	default:
		return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%q is not a valid payment method", s))
	}
}

// Validate checks if the PaymentMethod is one of the defined methods.
func (p PaymentMethod) Validate() error {
	if p != PaymentCash && p != PaymentTransfer {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%d is not a valid payment method", p))
	}
	return nil
}

// String returns the lowercase name of the payment method.
func (p PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[p]; ok {
		return str
	}
	return "unknown"
}
