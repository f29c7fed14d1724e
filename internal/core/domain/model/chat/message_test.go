package chat_test

import (
	"testing"
	"time"

	"foodorder/internal/core/domain/model/chat"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleCustomer, "Alice")
	require.NoError(t, err)
	orderID := kernel.NewUUID()
	sentAt := time.Date(2025, 3, 14, 12, 30, 0, 0, time.UTC)

	t.Run("should create valid message", func(t *testing.T) {
		m, err := chat.NewMessage(kernel.NewUUID(), orderID, actor, "where is my food?", sentAt)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.True(t, m.OrderID().IsEqual(orderID))
		assert.True(t, m.SenderID().IsEqual(actor.ID()))
		assert.Equal(t, "Alice", m.SenderName())
		assert.Equal(t, kernel.RoleCustomer, m.SenderRole())
		assert.Equal(t, "where is my food?", m.Text())
		assert.Equal(t, sentAt, m.SentAt())
	})

	t.Run("should reject empty text", func(t *testing.T) {
		_, err := chat.NewMessage(kernel.NewUUID(), orderID, actor, "   ", sentAt)

		require.Error(t, err)
	})

	t.Run("should reject empty order id", func(t *testing.T) {
		_, err := chat.NewMessage(kernel.NewUUID(), kernel.UUID{}, actor, "hi", sentAt)

		require.Error(t, err)
	})
}

func TestRestoreMessage(t *testing.T) {
	m, err := chat.RestoreMessage(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Bob", kernel.RoleDriver, "on my way", time.Now())

	require.NoError(t, err)
	assert.Equal(t, kernel.RoleDriver, m.SenderRole())
	assert.Equal(t, "Bob", m.SenderName())
}
