package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Loan struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	BorrowerID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	BusinessID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount       decimal.Decimal `gorm:"type:decimal(9,2);not null"`
	Currency     string          `gorm:"type:varchar(3);not null;default:'GBP'"`
	Reason       string          `gorm:"type:varchar(256);not null"`
	DurationDays int             `gorm:"not null"`
	InterestRate decimal.Decimal `gorm:"type:decimal(6,5);not null"`
	Status       string          `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt    time.Time
	ModifiedAt   time.Time

	Borrower BorrowerProfile `gorm:"foreignKey:BorrowerID"`
	Business Business        `gorm:"foreignKey:BusinessID"`
}
