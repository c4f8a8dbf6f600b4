package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// BusinessSector represents the activity sector of a business.
type BusinessSector string

const (
	SectorRetail               BusinessSector = "retail"
	SectorProfessionalServices BusinessSector = "professional_services"
	SectorFoodAndDrink         BusinessSector = "food_and_drink"
	SectorEntertainment        BusinessSector = "entertainment"
)

// ValidSector reports whether s is a known sector.
func ValidSector(s BusinessSector) bool {
	switch s {
	case SectorRetail, SectorProfessionalServices, SectorFoodAndDrink, SectorEntertainment:
		return true
	}
	return false
}

// Business is a company registered by a borrower. Once it has loans it
// becomes immutable and non-deletable.
type Business struct {
	ID            uuid.UUID      `json:"id"`
	OwnerID       uuid.UUID      `json:"ownerId"`
	Name          string         `json:"name"`
	Address       string         `json:"address"`
	CompanyNumber string         `json:"companyNumber"`
	Sector        BusinessSector `json:"sector"`
	CreatedAt     time.Time      `json:"createdAt"`
	ValidatedAt   null.Time      `json:"validatedAt,omitempty"`
	LoanCount     int64          `json:"loanCount"`
}

// BusinessInput represents input for creating or updating a business.
type BusinessInput struct {
	Name          string         `json:"name" binding:"required,max=64"`
	Address       string         `json:"address" binding:"required,max=128"`
	CompanyNumber string         `json:"companyNumber" binding:"required"`
	Sector        BusinessSector `json:"sector" binding:"required"`
}
