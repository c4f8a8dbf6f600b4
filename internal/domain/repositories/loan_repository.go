package repositories

import (
	"context"

	"github.com/google/uuid"

	"borrowbank.backend/internal/domain/entities"
)

// LoanRepository defines loan data operations. Reads are scoped to the
// owning borrower so a foreign loan behaves as not found.
type LoanRepository interface {
	Create(ctx context.Context, loan *entities.Loan) error
	GetByIDForBorrower(ctx context.Context, id, borrowerID uuid.UUID) (*entities.Loan, error)
	ListByBorrower(ctx context.Context, borrowerID uuid.UUID, limit, offset int) ([]*entities.Loan, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.LoanStatus) error
	CountByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error)
}
