// Package accountrepo provides persistence for user accounts.
package accountrepo

import (
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for user accounts.
type AccountDTO struct {
	UID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	DisplayName     string
	Email           string `gorm:"uniqueIndex"`
	Role            int    `gorm:"index"`
	DeliveryAddress string
	PhoneNumber     string
}

// TableName overrides GORM's default naming convention to use "accounts".
func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		UID:             aggregate.UID().Bytes(),
		DisplayName:     aggregate.DisplayName(),
		Email:           aggregate.Email(),
		Role:            int(aggregate.Role()),
		DeliveryAddress: aggregate.DeliveryAddress(),
		PhoneNumber:     aggregate.PhoneNumber(),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	uid, err := kernel.UUIDFromBytes(dto.UID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(uid, dto.DisplayName, dto.Email,
		kernel.Role(dto.Role), dto.DeliveryAddress, dto.PhoneNumber)
}
