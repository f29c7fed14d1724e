package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrChangeRoleCommandIsNotConstructed = errors.New(
	"ChangeRoleCommand must be created via NewChangeRoleCommand constructor",
)

// ChangeRoleCommand represents an administrator changing another account's
// role. Who may grant what is decided by the account aggregate.
type ChangeRoleCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	actor     kernel.Actor
	newRole   kernel.Role

	guard guard.ConstructorGuard
}

// NewChangeRoleCommand creates a command to change an account's role.
func NewChangeRoleCommand(accountID kernel.UUID, actor kernel.Actor,
	newRole string) (ChangeRoleCommand, error) {
	cmd := ChangeRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setActor(actor),
		cmd.setNewRole(newRole),
	); err != nil {
		return ChangeRoleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeRoleCommand) Validate() error {
	return c.guard.Validate(ErrChangeRoleCommandIsNotConstructed)
}

// AccountID returns the account whose role changes.
func (c ChangeRoleCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Actor returns the acting principal.
func (c ChangeRoleCommand) Actor() kernel.Actor {
	return c.actor
}

// NewRole returns the role to assign.
func (c ChangeRoleCommand) NewRole() kernel.Role {
	return c.newRole
}

func (c *ChangeRoleCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("accountID", err)
	}

	c.accountID = accountID
	return nil
}

func (c *ChangeRoleCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}

	c.actor = actor
	return nil
}

func (c *ChangeRoleCommand) setNewRole(newRole string) error {
	role, err := kernel.RoleFromString(newRole)
	if err != nil {
		return err
	}

	c.newRole = role
	return nil
}
