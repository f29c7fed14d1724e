package ports

import (
	"context"

	"foodorder/internal/core/domain/model/chat"
	"foodorder/internal/core/domain/model/kernel"
)

// ChatRepository defines the persistence contract for order chat threads.
// Threads are append only: messages are added and read, never changed.
type ChatRepository interface {
	// Add appends a message to its order's thread.
	Add(ctx context.Context, message *chat.Message) error

	// GetByOrder retrieves an order's thread in send order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*chat.Message, error)
}
