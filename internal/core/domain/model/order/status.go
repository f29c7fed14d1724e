package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct kitchen and delivery workflow.
//
// State transitions:
//
//	pending ──> cooking ──> ready ──> delivering ──> delivered
//	   │
//	   └──> cancelled
//
// cancelled is reachable only from pending; delivered and cancelled are
// terminal. Which role may move an order along each edge is defined by the
// transition table in transition.go.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status set at checkout.
	// Pending orders wait for the kitchen to start cooking, or may be cancelled.
	StatusPending

	// StatusCooking indicates the kitchen is preparing the order.
	StatusCooking

	// StatusReady indicates the order is cooked and waiting for its driver.
	StatusReady

	// StatusDelivering indicates the assigned driver is en route.
	StatusDelivering

	// StatusDelivered indicates the driver confirmed delivery with the
	// correct PIN. This is a terminal state.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled while pending.
	// This is a terminal state; the order is kept for reporting.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusPending:    "pending",
		StatusCooking:    "cooking",
		StatusReady:      "ready",
		StatusDelivering: "delivering",
		StatusDelivered:  "delivered",
		StatusCancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:    "pending",
		StatusCooking:    "cooking",
		StatusReady:      "ready",
		StatusDelivering: "delivering",
		StatusDelivered:  "delivered",
		StatusCancelled:  "cancelled",
	}
}

// StatusFromString parses a status name as stored or transmitted externally.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status. Implements fmt.Stringer
// and is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}
