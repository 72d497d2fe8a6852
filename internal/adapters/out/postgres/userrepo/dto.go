// Package userrepo provides data transfer objects and mapping functions for
// user persistence. Email uniqueness is enforced by a database constraint;
// the repository maps a violation onto the domain's duplicate-email error.
package userrepo

import (
	"foodex/internal/core/domain/model/account"
	"foodex/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
type UserDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email        string     `gorm:"uniqueIndex"`
	Credential   string
	Role         int        `gorm:"index"`
	RestaurantID *uuid.UUID `gorm:"type:uuid"`
	Available    bool
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user aggregate to its database representation.
func fromDomain(aggregate *account.User) UserDTO {
	var restaurantID *uuid.UUID
	if id := aggregate.RestaurantID(); id != nil {
		raw := id.Bytes()
		restaurantID = &raw
	}

	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Email:        aggregate.Email(),
		Credential:   aggregate.Credential(),
		Role:         int(aggregate.Role()),
		RestaurantID: restaurantID,
		Available:    aggregate.IsAvailable(),
	}
}

// toDomain converts a database DTO to a user aggregate using RestoreUser.
func toDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var restaurantID *kernel.UUID
	if dto.RestaurantID != nil {
		rID, restaurantErr := kernel.UUIDFromBytes((*dto.RestaurantID)[:])
		if restaurantErr != nil {
			return nil, restaurantErr
		}

		restaurantID = &rID
	}

	return account.RestoreUser(
		id, dto.Email, dto.Credential,
		account.Role(dto.Role), restaurantID, dto.Available)
}
