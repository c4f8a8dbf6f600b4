package repositories

import (
	"context"

	"github.com/google/uuid"

	"borrowbank.backend/internal/domain/entities"
)

// BusinessRepository defines business data operations. Reads are scoped
// to the owning borrower so a foreign business behaves as not found.
type BusinessRepository interface {
	Create(ctx context.Context, business *entities.Business) error
	GetByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*entities.Business, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Business, error)
	Update(ctx context.Context, business *entities.Business) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
