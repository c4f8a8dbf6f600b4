package repositories

import (
	"context"

	"github.com/google/uuid"

	"borrowbank.backend/internal/domain/entities"
)

// BorrowerProfileRepository defines borrower profile data operations.
// Profiles are created once and never updated or deleted.
type BorrowerProfileRepository interface {
	Create(ctx context.Context, profile *entities.BorrowerProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.BorrowerProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.BorrowerProfile, error)
	PhoneNumberExists(ctx context.Context, phoneNumber string) (bool, error)
}
