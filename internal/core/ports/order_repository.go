package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves orders that the kitchen still works on,
	// that is pending, cooking or ready orders, oldest first.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetByDriver retrieves orders assigned to a driver that are ready
	// for pickup or currently on the road.
	GetByDriver(ctx context.Context, driverID kernel.UUID) ([]*order.Order, error)

	// GetByCustomer retrieves a customer's order history, newest first.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)
}
