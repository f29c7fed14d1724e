package chat

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrMessageIsNotConstructed = fmt.Errorf(
	"message is not constructed, use NewMessage: %w", guard.ErrDefaultConstructorGuard)

// Message is a single entry in an order's chat thread. Messages are
// append only and never edited after creation.
type Message struct {
	id       kernel.UUID
	orderID  kernel.UUID
	senderID kernel.UUID
	sender   string
	role     kernel.Role
	text     string
	sentAt   time.Time

	guard guard.ConstructorGuard
}

// NewMessage creates a message posted by actor in the chat thread of orderID.
func NewMessage(id kernel.UUID, orderID kernel.UUID, actor kernel.Actor,
	text string, sentAt time.Time) (*Message, error) {
	m := &Message{guard: guard.NewConstructorGuard()}

	err := errors.Join(
		m.setID(id),
		m.setOrderID(orderID),
		m.setSender(actor),
		m.setText(text),
	)
	if err != nil {
		return nil, err
	}

	m.sentAt = sentAt
	return m, nil
}

// RestoreMessage reconstructs a message from persisted state.
func RestoreMessage(id kernel.UUID, orderID kernel.UUID, senderID kernel.UUID,
	sender string, role kernel.Role, text string, sentAt time.Time) (*Message, error) {
	m := &Message{guard: guard.NewConstructorGuard()}

	err := errors.Join(
		m.setID(id),
		m.setOrderID(orderID),
		m.setRestoredSender(senderID, sender, role),
		m.setText(text),
	)
	if err != nil {
		return nil, err
	}

	m.sentAt = sentAt
	return m, nil
}

func (m *Message) Validate() error {
	return m.guard.Validate(ErrMessageIsNotConstructed)
}

func (m *Message) ID() kernel.UUID {
	return m.id
}

func (m *Message) OrderID() kernel.UUID {
	return m.orderID
}

func (m *Message) SenderID() kernel.UUID {
	return m.senderID
}

func (m *Message) SenderName() string {
	return m.sender
}

func (m *Message) SenderRole() kernel.Role {
	return m.role
}

func (m *Message) Text() string {
	return m.text
}

func (m *Message) SentAt() time.Time {
	return m.sentAt
}

func (m *Message) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	m.id = id
	return nil
}

func (m *Message) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	m.orderID = orderID
	return nil
}

func (m *Message) setSender(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	m.senderID = actor.ID()
	m.sender = actor.Name()
	m.role = actor.Role()
	return nil
}

func (m *Message) setRestoredSender(senderID kernel.UUID, sender string, role kernel.Role) error {
	if err := senderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("senderID", err)
	}
	if err := role.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("role", err)
	}
	m.senderID = senderID
	m.sender = sender
	m.role = role
	return nil
}

func (m *Message) setText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errs.NewValueIsRequiredError("text")
	}
	m.text = text
	return nil
}
