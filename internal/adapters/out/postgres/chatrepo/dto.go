// Package chatrepo provides persistence for order chat threads.
package chatrepo

import (
	"time"

	"foodorder/internal/core/domain/model/chat"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// MessageDTO represents the database structure for chat messages.
type MessageDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	SenderID   uuid.UUID `gorm:"type:uuid"`
	SenderName string
	SenderRole int
	Text       string
	SentAt     time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming convention to use "chat_messages".
func (MessageDTO) TableName() string {
	return "chat_messages"
}

func fromDomain(message *chat.Message) MessageDTO {
	return MessageDTO{
		ID:         message.ID().Bytes(),
		OrderID:    message.OrderID().Bytes(),
		SenderID:   message.SenderID().Bytes(),
		SenderName: message.SenderName(),
		SenderRole: int(message.SenderRole()),
		Text:       message.Text(),
		SentAt:     message.SentAt(),
	}
}

func toDomain(dto MessageDTO) (*chat.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	return chat.RestoreMessage(id, orderID, senderID, dto.SenderName,
		kernel.Role(dto.SenderRole), dto.Text, dto.SentAt)
}
