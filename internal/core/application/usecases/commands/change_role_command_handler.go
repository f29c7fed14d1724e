package commands

import (
	"context"
)

// ChangeRoleCommandHandler changes an account's role on behalf of an
// administrator or developer.
type ChangeRoleCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewChangeRoleCommandHandler creates a handler for role changes.
func NewChangeRoleCommandHandler(uowFactory AccountUoWFactory) ChangeRoleCommandHandler {
	return ChangeRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the account, applies the role change and persists the result.
func (h ChangeRoleCommandHandler) Handle(ctx context.Context, cmd ChangeRoleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()
	aggregate, err := accountRepo.Get(ctx, cmd.AccountID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeRole(cmd.Actor(), cmd.NewRole()); err != nil {
		return err
	}

	if err = accountRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
