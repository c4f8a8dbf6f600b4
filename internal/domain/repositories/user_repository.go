package repositories

import (
	"context"

	"github.com/google/uuid"

	"borrowbank.backend/internal/domain/entities"
)

// UserRepository defines user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	UpdateNames(ctx context.Context, id uuid.UUID, firstName, lastName string) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}
