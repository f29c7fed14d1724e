package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrGetChatHistoryQueryIsNotConstructed = errors.New(
	"GetChatHistoryQuery must be created via NewGetChatHistoryQuery constructor",
)

// GetChatHistoryQuery retrieves an order's chat thread in send order.
type GetChatHistoryQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetChatHistoryQuery creates a query for an order's chat thread.
func NewGetChatHistoryQuery(orderID kernel.UUID) (GetChatHistoryQuery, error) {
	q := GetChatHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderID(orderID); err != nil {
		return GetChatHistoryQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetChatHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetChatHistoryQueryIsNotConstructed)
}

// OrderID returns the thread's order.
func (q GetChatHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetChatHistoryQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	q.orderID = orderID
	return nil
}

// GetChatHistoryQueryResponse is one message of a chat thread.
type GetChatHistoryQueryResponse struct {
	ID         kernel.UUID
	SenderID   kernel.UUID
	SenderName string
	SenderRole string
	Text       string
	SentAt     time.Time
}
