package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/chat"
)

// PostChatMessageCommandHandler appends a message to an order's chat thread.
// The order is loaded first so messages can never attach to a nonexistent
// order.
type PostChatMessageCommandHandler struct {
	uowFactory ChatUoWFactory
	now        func() time.Time
}

// NewPostChatMessageCommandHandler creates a handler for posting chat messages.
func NewPostChatMessageCommandHandler(uowFactory ChatUoWFactory, now func() time.Time) PostChatMessageCommandHandler {
	return PostChatMessageCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle verifies the order exists, builds the message and appends it to
// the thread.
func (h PostChatMessageCommandHandler) Handle(ctx context.Context, cmd PostChatMessageCommand) error {
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

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	message, err := chat.NewMessage(cmd.MessageID(), cmd.OrderID(), cmd.Actor(),
		cmd.Text(), h.now())
	if err != nil {
		return err
	}

	if err = uow.ChatRepository().Add(ctx, message); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
