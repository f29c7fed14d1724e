package queries

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler assembles the statistics report. It reads a
// flat order snapshot plus the sold lines of delivered orders and feeds
// both to the stats calculator. Orders are fetched back to the start of the
// trailing twelve months even for narrow windows, because the monthly
// series always covers a full year.
type GetOrderStatsQueryHandler struct {
	db   *gorm.DB
	calc services.StatsCalculator
	now  func() time.Time
}

// NewGetOrderStatsQueryHandler creates a handler for statistics queries.
// Requires a GORM database connection for query execution.
func NewGetOrderStatsQueryHandler(db *gorm.DB, now func() time.Time) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{
		db:   db,
		calc: services.NewStatsCalculator(),
		now:  now,
	}
}

// Handle executes the query and returns the report for the actor's access
// level. Callers outside the reporting staff are rejected.
func (h GetOrderStatsQueryHandler) Handle(ctx context.Context,
	query GetOrderStatsQuery) (services.Report, error) {
	if err := query.Validate(); err != nil {
		return services.Report{}, err
	}

	access, err := services.AccessLevelFor(query.Actor().Role())
	if err != nil {
		return services.Report{}, err
	}

	now := h.now()
	since := fetchLowerBound(query.Window(), now)

	snapshot, err := h.loadSnapshot(ctx, since)
	if err != nil {
		return services.Report{}, err
	}

	return h.calc.Calculate(snapshot, query.Window(), now, access), nil
}

// fetchLowerBound widens the window's start so the fetched rows also cover
// the monthly series, which reaches back eleven calendar months.
func fetchLowerBound(window services.TimeWindow, now time.Time) time.Time {
	windowStart := window.Start(now)
	monthlyStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -11, 0)

	if windowStart.IsZero() || windowStart.Before(monthlyStart) {
		return windowStart
	}
	return monthlyStart
}

func (h GetOrderStatsQueryHandler) loadSnapshot(ctx context.Context,
	since time.Time) (services.Snapshot, error) {
	var snapshot services.Snapshot

	orders, err := h.loadOrders(ctx, since)
	if err != nil {
		return services.Snapshot{}, err
	}
	snapshot.Orders = orders

	items, err := h.loadDeliveredItems(ctx, since)
	if err != nil {
		return services.Snapshot{}, err
	}
	snapshot.DeliveredItems = items

	return snapshot, nil
}

func (h GetOrderStatsQueryHandler) loadOrders(ctx context.Context,
	since time.Time) ([]services.OrderRecord, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			status,
			payment_method,
			total_amount,
			order_date,
			cancellation_reason
		FROM orders
		WHERE order_date >= ?
	`, since).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]services.OrderRecord, 0)
	for rows.Next() {
		var (
			id            uuid.UUID
			customerName  string
			status        int
			paymentMethod int
			totalAmount   int64
			orderDate     time.Time
			reason        string
		)

		if err = rows.Scan(&id, &customerName, &status, &paymentMethod,
			&totalAmount, &orderDate, &reason); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		records = append(records, services.OrderRecord{
			ID:                 orderID,
			CustomerName:       customerName,
			Status:             order.Status(status),
			PaymentMethod:      order.PaymentMethod(paymentMethod),
			TotalAmount:        totalAmount,
			OrderDate:          orderDate,
			CancellationReason: reason,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (h GetOrderStatsQueryHandler) loadDeliveredItems(ctx context.Context,
	since time.Time) ([]services.ItemRecord, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.order_id,
			i.name,
			i.quantity,
			o.order_date
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.status = ? AND o.order_date >= ?
	`, int(order.StatusDelivered), since).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]services.ItemRecord, 0)
	for rows.Next() {
		var (
			orderID   uuid.UUID
			name      string
			quantity  int
			orderDate time.Time
		)

		if err = rows.Scan(&orderID, &name, &quantity, &orderDate); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}

		records = append(records, services.ItemRecord{
			OrderID:     id,
			ProductName: name,
			Quantity:    quantity,
			OrderDate:   orderDate,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
