package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves the kitchen board: every order that is
// pending, cooking or ready, oldest first.
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for the kitchen board.
// This is a parameterless query.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// ActiveOrderItemResponse is one line of an active order.
type ActiveOrderItemResponse struct {
	Name     string
	Quantity int
	Note     string
}

// GetActiveOrdersQueryResponse is one row of the kitchen board.
type GetActiveOrdersQueryResponse struct {
	ID              kernel.UUID
	CustomerName    string
	DeliveryAddress string
	Status          string
	TotalAmount     int64
	OrderDate       time.Time
	DriverName      string
	Items           []ActiveOrderItemResponse
}
