package queries

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetChatHistoryQueryHandler retrieves an order's chat thread.
type GetChatHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetChatHistoryQueryHandler creates a handler for chat history queries.
func NewGetChatHistoryQueryHandler(db *gorm.DB) GetChatHistoryQueryHandler {
	return GetChatHistoryQueryHandler{db: db}
}

// Handle executes the query. Messages come back in send order with the
// message id as a tiebreak for equal timestamps.
func (h GetChatHistoryQueryHandler) Handle(ctx context.Context,
	query GetChatHistoryQuery) ([]GetChatHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	messages := make([]GetChatHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sender_id,
			sender_name,
			sender_role,
			text,
			sent_at
		FROM chat_messages
		WHERE order_id = ?
		ORDER BY sent_at, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         uuid.UUID
			senderID   uuid.UUID
			senderName string
			senderRole int
			text       string
			sentAt     time.Time
		)

		if err = rows.Scan(&id, &senderID, &senderName, &senderRole,
			&text, &sentAt); err != nil {
			return nil, err
		}

		messageID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		sender, idErr := kernel.UUIDFromBytes(senderID[:])
		if idErr != nil {
			return nil, idErr
		}

		messages = append(messages, GetChatHistoryQueryResponse{
			ID:         messageID,
			SenderID:   sender,
			SenderName: senderName,
			SenderRole: kernel.Role(senderRole).String(),
			Text:       text,
			SentAt:     sentAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}
