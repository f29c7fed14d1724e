package ports

import (
	"context"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for user accounts.
type AccountRepository interface {
	// Add persists a new account.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists profile or role changes to an existing account.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, uid kernel.UUID) (*account.Account, error)
}
