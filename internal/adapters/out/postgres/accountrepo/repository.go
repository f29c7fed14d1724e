package accountrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new account to the database.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("add account", err)
	}

	r.tracker.TrackAggregate(aggregate.UID(), aggregate)
	return nil
}

// Update saves profile and role changes to an existing account.
func (r *GormAccountRepository) Update(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AccountDTO{}).
		Where("uid = ?", dto.UID).
		Updates(map[string]any{
			"display_name":     dto.DisplayName,
			"role":             dto.Role,
			"delivery_address": dto.DeliveryAddress,
			"phone_number":     dto.PhoneNumber,
		})
	if result.Error != nil {
		return errs.NewPersistenceError("update account", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("account", aggregate.UID().String())
	}

	r.tracker.TrackAggregate(aggregate.UID(), aggregate)
	return nil
}

// Get retrieves an account by its identifier.
func (r *GormAccountRepository) Get(ctx context.Context, uid kernel.UUID) (*account.Account, error) {
	if err := uid.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "uid = ?", uid.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", uid.String())
		}
		return nil, errs.NewPersistenceError("get account", err)
	}

	return toDomain(dto)
}
