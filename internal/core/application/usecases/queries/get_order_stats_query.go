package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery requests the statistics report for a time window on
// behalf of an actor. The actor's role decides between the full and the
// limited report variant.
//
// Example:
//
//	query, err := NewGetOrderStatsQuery(services.WindowMonth, actor)
//	if err != nil {
//	    return fmt.Errorf("invalid stats request: %w", err)
//	}
//
//	handler := NewGetOrderStatsQueryHandler(db, time.Now)
//	report, err := handler.Handle(ctx, query)
type GetOrderStatsQuery struct { //nolint:recvcheck //using for validation
	window services.TimeWindow
	actor  kernel.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a query for the statistics report.
func NewGetOrderStatsQuery(window services.TimeWindow, actor kernel.Actor) (GetOrderStatsQuery, error) {
	q := GetOrderStatsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setWindow(window),
		q.setActor(actor),
	); err != nil {
		return GetOrderStatsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// Window returns the requested reporting period.
func (q GetOrderStatsQuery) Window() services.TimeWindow {
	return q.window
}

// Actor returns the requesting principal.
func (q GetOrderStatsQuery) Actor() kernel.Actor {
	return q.actor
}

func (q *GetOrderStatsQuery) setWindow(window services.TimeWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}

	q.window = window
	return nil
}

func (q *GetOrderStatsQuery) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}

	q.actor = actor
	return nil
}
