package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrStartCookingCommandIsNotConstructed = errors.New(
	"StartCookingCommand must be created via NewStartCookingCommand constructor",
)

// StartCookingCommand represents a request to move a pending order into the
// kitchen. Only staff may do this, which the order aggregate enforces.
type StartCookingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewStartCookingCommand creates a command to start cooking an order.
func NewStartCookingCommand(orderID kernel.UUID, actor kernel.Actor) (StartCookingCommand, error) {
	cmd := StartCookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return StartCookingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartCookingCommand) Validate() error {
	return c.guard.Validate(ErrStartCookingCommandIsNotConstructed)
}

// OrderID returns the order to move into cooking.
func (c StartCookingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting principal.
func (c StartCookingCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *StartCookingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	c.orderID = orderID
	return nil
}

func (c *StartCookingCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}

	c.actor = actor
	return nil
}
