package chatrepo

import (
	"context"

	"foodorder/internal/core/domain/model/chat"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormChatRepository implements ChatRepository using GORM. Threads are
// append only, there is no update path.
type GormChatRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormChatRepository creates a new GORM chat repository.
func NewGormChatRepository(db *gorm.DB, tracker aggregateTracker) *GormChatRepository {
	return &GormChatRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a message to its order's thread.
func (r *GormChatRepository) Add(ctx context.Context, message *chat.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	dto := fromDomain(message)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("add chat message", err)
	}

	r.tracker.TrackAggregate(message.ID(), message)
	return nil
}

// GetByOrder retrieves an order's thread in send order.
func (r *GormChatRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*chat.Message, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("sent_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewPersistenceError("get chat messages", err)
	}

	messages := make([]*chat.Message, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, nil
}
