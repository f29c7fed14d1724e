package commands

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrPostChatMessageCommandIsNotConstructed = errors.New(
	"PostChatMessageCommand must be created via NewPostChatMessageCommand constructor",
)

// PostChatMessageCommand represents a participant posting a message in an
// order's chat thread.
type PostChatMessageCommand struct { //nolint:recvcheck //using for validation
	messageID kernel.UUID
	orderID   kernel.UUID
	actor     kernel.Actor
	text      string

	guard guard.ConstructorGuard
}

// NewPostChatMessageCommand creates a command to post a chat message.
func NewPostChatMessageCommand(messageID, orderID kernel.UUID, actor kernel.Actor,
	text string) (PostChatMessageCommand, error) {
	cmd := PostChatMessageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMessageID(messageID),
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setText(text),
	); err != nil {
		return PostChatMessageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PostChatMessageCommand) Validate() error {
	return c.guard.Validate(ErrPostChatMessageCommandIsNotConstructed)
}

// MessageID returns the identifier assigned to the new message.
func (c PostChatMessageCommand) MessageID() kernel.UUID {
	return c.messageID
}

// OrderID returns the thread the message belongs to.
func (c PostChatMessageCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the posting principal.
func (c PostChatMessageCommand) Actor() kernel.Actor {
	return c.actor
}

// Text returns the message body.
func (c PostChatMessageCommand) Text() string {
	return c.text
}

func (c *PostChatMessageCommand) setMessageID(messageID kernel.UUID) error {
	if err := messageID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("messageID", err)
	}

	c.messageID = messageID
	return nil
}

func (c *PostChatMessageCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	c.orderID = orderID
	return nil
}

func (c *PostChatMessageCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}

	c.actor = actor
	return nil
}

func (c *PostChatMessageCommand) setText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errs.NewValueIsRequiredError("text")
	}

	c.text = text
	return nil
}
