package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Business struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(64);not null"`
	Address       string    `gorm:"type:varchar(128);not null"`
	CompanyNumber string    `gorm:"type:varchar(8);not null"`
	Sector        string    `gorm:"type:varchar(32);not null"`
	CreatedAt     time.Time
	ValidatedAt   *time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`

	Owner BorrowerProfile `gorm:"foreignKey:OwnerID"`
}
