package models

import (
	"time"

	"github.com/google/uuid"
)

// The unique index on phone_number is the final authority against the
// check-then-insert race during activation.
type BorrowerProfile struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	PhoneNumber string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	IsVerified  bool      `gorm:"not null;default:false"`
	HasSigned   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time

	User User `gorm:"foreignKey:UserID"`
}
