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

// GetCustomerOrdersQueryHandler retrieves a customer's order history.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer history queries.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns the customer's orders, newest first.
func (h GetCustomerOrdersQueryHandler) Handle(ctx context.Context,
	query GetCustomerOrdersQuery) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetCustomerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			total_amount,
			payment_method,
			order_date,
			driver_name,
			cancellation_reason
		FROM orders
		WHERE customer_id = ?
		ORDER BY order_date DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id            uuid.UUID
			status        int
			totalAmount   int64
			paymentMethod int
			orderDate     time.Time
			driverName    sql.NullString
			reason        string
		)

		if err = rows.Scan(&id, &status, &totalAmount, &paymentMethod,
			&orderDate, &driverName, &reason); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, GetCustomerOrdersQueryResponse{
			ID:                 orderID,
			Status:             order.Status(status).String(),
			TotalAmount:        totalAmount,
			PaymentMethod:      order.PaymentMethod(paymentMethod).String(),
			OrderDate:          orderDate,
			DriverName:         driverName.String,
			CancellationReason: reason,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
