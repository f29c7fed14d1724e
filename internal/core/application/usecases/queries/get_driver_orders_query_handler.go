package queries

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriverOrdersQueryHandler retrieves a driver's worklist from the database.
type GetDriverOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverOrdersQueryHandler creates a handler for driver worklist queries.
func NewGetDriverOrdersQueryHandler(db *gorm.DB) GetDriverOrdersQueryHandler {
	return GetDriverOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns the driver's ready and delivering
// orders, oldest first.
func (h GetDriverOrdersQueryHandler) Handle(ctx context.Context,
	query GetDriverOrdersQuery) ([]GetDriverOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetDriverOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			customer_phone_number,
			customer_delivery_address,
			status,
			total_amount,
			payment_method,
			order_date
		FROM orders
		WHERE driver_id = ? AND status IN (?, ?)
		ORDER BY order_date
	`, query.DriverID().Bytes(), int(order.StatusReady), int(order.StatusDelivering)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id            uuid.UUID
			name          string
			phone         string
			address       string
			status        int
			totalAmount   int64
			paymentMethod int
			orderDate     time.Time
		)

		if err = rows.Scan(&id, &name, &phone, &address, &status, &totalAmount,
			&paymentMethod, &orderDate); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, GetDriverOrdersQueryResponse{
			ID:              orderID,
			CustomerName:    name,
			PhoneNumber:     phone,
			DeliveryAddress: address,
			Status:          order.Status(status).String(),
			TotalAmount:     totalAmount,
			PaymentMethod:   order.PaymentMethod(paymentMethod).String(),
			OrderDate:       orderDate,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
