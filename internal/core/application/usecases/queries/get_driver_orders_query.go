package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrGetDriverOrdersQueryIsNotConstructed = errors.New(
	"GetDriverOrdersQuery must be created via NewGetDriverOrdersQuery constructor",
)

// GetDriverOrdersQuery retrieves the orders a driver should care about:
// ready orders assigned to them plus deliveries already on the road.
type GetDriverOrdersQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverOrdersQuery creates a query for a driver's worklist.
func NewGetDriverOrdersQuery(driverID kernel.UUID) (GetDriverOrdersQuery, error) {
	q := GetDriverOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setDriverID(driverID); err != nil {
		return GetDriverOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverOrdersQueryIsNotConstructed)
}

// DriverID returns the driver whose worklist is requested.
func (q GetDriverOrdersQuery) DriverID() kernel.UUID {
	return q.driverID
}

func (q *GetDriverOrdersQuery) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driverID", err)
	}

	q.driverID = driverID
	return nil
}

// GetDriverOrdersQueryResponse is one order on a driver's worklist.
type GetDriverOrdersQueryResponse struct {
	ID              kernel.UUID
	CustomerName    string
	PhoneNumber     string
	DeliveryAddress string
	Status          string
	TotalAmount     int64
	PaymentMethod   string
	OrderDate       time.Time
}
