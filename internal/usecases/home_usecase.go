package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"borrowbank.backend/internal/domain/entities"
	domainerrors "borrowbank.backend/internal/domain/errors"
	"borrowbank.backend/internal/domain/repositories"
)

// HomeUsecase assembles the dashboard view.
type HomeUsecase struct {
	borrowerRepo repositories.BorrowerProfileRepository
	businessRepo repositories.BusinessRepository
	loanRepo     repositories.LoanRepository
}

// NewHomeUsecase creates a new home usecase.
func NewHomeUsecase(
	borrowerRepo repositories.BorrowerProfileRepository,
	businessRepo repositories.BusinessRepository,
	loanRepo repositories.LoanRepository,
) *HomeUsecase {
	return &HomeUsecase{
		borrowerRepo: borrowerRepo,
		businessRepo: businessRepo,
		loanRepo:     loanRepo,
	}
}

// Summary returns the user's borrower profile, businesses and loans.
// A user who has not activated yet gets an empty summary rather than
// an error, so the dashboard can prompt them to activate.
func (u *HomeUsecase) Summary(ctx context.Context, userID uuid.UUID) (*entities.HomeSummary, error) {
	profile, err := u.borrowerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return &entities.HomeSummary{
				Businesses: []*entities.Business{},
				Loans:      []*entities.Loan{},
			}, nil
		}
		return nil, err
	}

	businesses, err := u.businessRepo.ListByOwner(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	loans, _, err := u.loanRepo.ListByBorrower(ctx, profile.ID, 0, 0)
	if err != nil {
		return nil, err
	}

	return &entities.HomeSummary{
		Borrower:   profile,
		Businesses: businesses,
		Loans:      loans,
	}, nil
}
