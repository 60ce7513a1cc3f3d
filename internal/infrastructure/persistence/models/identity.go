package models

import (
	"time"

	"github.com/bizmaster/backend/internal/domain/identity"
	"github.com/bizmaster/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UserModel is the persistence model for the User domain entity
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt    time.Time `gorm:"not null"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FullName     string    `gorm:"type:varchar(200)"`
	Role         string    `gorm:"type:varchar(20);not null"`
	BusinessUnit string    `gorm:"type:varchar(50);not null;default:'All'"`
	LastLoginAt  *time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
		},
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		FullName:     m.FullName,
		Role:         identity.Role(m.Role),
		BusinessUnit: m.BusinessUnit,
		LastLoginAt:  m.LastLoginAt,
	}
}

// UserModelFromDomain builds the persistence model from a domain User
func UserModelFromDomain(u *identity.User) *UserModel {
	return &UserModel{
		ID:           u.ID,
		CreatedAt:    u.CreatedAt,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		FullName:     u.FullName,
		Role:         string(u.Role),
		BusinessUnit: u.BusinessUnit,
		LastLoginAt:  u.LastLoginAt,
	}
}
