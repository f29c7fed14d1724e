package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents a staff request to bind a driver to an
// order before the driver accepts the delivery.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	actor      kernel.Actor
	driverID   kernel.UUID
	driverName string

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign a driver to an order.
func NewAssignDriverCommand(orderID kernel.UUID, actor kernel.Actor,
	driverID kernel.UUID, driverName string) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setDriver(driverID, driverName),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// OrderID returns the order receiving the driver.
func (c AssignDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting principal.
func (c AssignDriverCommand) Actor() kernel.Actor {
	return c.actor
}

// DriverID returns the driver to bind to the order.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// DriverName returns the driver's display name.
func (c AssignDriverCommand) DriverName() string {
	return c.driverName
}

func (c *AssignDriverCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDriverCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}

	c.actor = actor
	return nil
}

func (c *AssignDriverCommand) setDriver(driverID kernel.UUID, driverName string) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driverID", err)
	}

	c.driverID = driverID
	c.driverName = driverName
	return nil
}
