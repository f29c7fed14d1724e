package queries

import (
	"context"
	"database/sql"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves active orders from the database.
// Two reads: the order rows, then the lines of those orders, stitched
// together in memory.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for kitchen board queries.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns pending, cooking and ready orders
// sorted by order date, oldest first.
func (h GetActiveOrdersQueryHandler) Handle(ctx context.Context,
	query GetActiveOrdersQuery) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)
	index := make(map[kernel.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			customer_delivery_address,
			status,
			total_amount,
			order_date,
			driver_name
		FROM orders
		WHERE status IN (?, ?, ?)
		ORDER BY order_date
	`, int(order.StatusPending), int(order.StatusCooking), int(order.StatusReady)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id          uuid.UUID
			name        string
			address     string
			status      int
			totalAmount int64
			orderDate   time.Time
			driverName  sql.NullString
		)

		if err = rows.Scan(&id, &name, &address, &status, &totalAmount,
			&orderDate, &driverName); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		index[orderID] = len(orders)
		orders = append(orders, GetActiveOrdersQueryResponse{
			ID:              orderID,
			CustomerName:    name,
			DeliveryAddress: address,
			Status:          order.Status(status).String(),
			TotalAmount:     totalAmount,
			OrderDate:       orderDate,
			DriverName:      driverName.String,
			Items:           make([]ActiveOrderItemResponse, 0),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	if err = h.attachItems(ctx, orders, index); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetActiveOrdersQueryHandler) attachItems(ctx context.Context,
	orders []GetActiveOrdersQueryResponse, index map[kernel.UUID]int) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.order_id,
			i.name,
			i.quantity,
			i.note
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.status IN (?, ?, ?)
	`, int(order.StatusPending), int(order.StatusCooking), int(order.StatusReady)).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID  uuid.UUID
			name     string
			quantity int
			note     string
		)

		if err = rows.Scan(&orderID, &name, &quantity, &note); err != nil {
			return err
		}

		id, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return idErr
		}

		if i, ok := index[id]; ok {
			orders[i].Items = append(orders[i].Items, ActiveOrderItemResponse{
				Name:     name,
				Quantity: quantity,
				Note:     note,
			})
		}
	}

	return rows.Err()
}
