package usecases

import (
	"context"
	"net/http"
	"regexp"

	"github.com/google/uuid"

	"borrowbank.backend/internal/domain/entities"
	domainerrors "borrowbank.backend/internal/domain/errors"
	"borrowbank.backend/internal/domain/repositories"
	"borrowbank.backend/pkg/utils"
)

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// rateMismatchMessage is shown when the submitted rate no longer
// matches the offered one, for example after a pricing change between
// quote and submit.
const rateMismatchMessage = "There was a problem calculating your interest rate."

// LoanUsecase handles loan requests and their lifecycle.
type LoanUsecase struct {
	loanRepo     repositories.LoanRepository
	businessRepo repositories.BusinessRepository
	rates        *RateCalculator
}

// NewLoanUsecase creates a new loan usecase.
func NewLoanUsecase(
	loanRepo repositories.LoanRepository,
	businessRepo repositories.BusinessRepository,
	rates *RateCalculator,
) *LoanUsecase {
	return &LoanUsecase{
		loanRepo:     loanRepo,
		businessRepo: businessRepo,
		rates:        rates,
	}
}

// Create validates and records a loan request for one of the
// borrower's businesses. The client submits back the rate it was
// quoted; a mismatch rejects the request.
func (u *LoanUsecase) Create(ctx context.Context, borrowerID uuid.UUID, input *entities.CreateLoanInput) (*entities.Loan, error) {
	businessID, err := uuid.Parse(input.BusinessID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid business id")
	}
	if _, err := u.businessRepo.GetByIDForOwner(ctx, businessID, borrowerID); err != nil {
		return nil, err
	}

	if input.Amount.LessThan(entities.MinLoanAmount) || input.Amount.GreaterThan(entities.MaxLoanAmount) {
		return nil, domainerrors.BadRequest("amount must be between 10000 and 100000")
	}
	if input.DurationDays <= 0 || input.DurationDays > entities.MaxLoanDurationDays {
		return nil, domainerrors.BadRequest("duration must be between 1 and 10000 days")
	}

	currency := input.Currency
	if currency == "" {
		currency = entities.DefaultCurrency
	} else if !currencyPattern.MatchString(currency) {
		return nil, domainerrors.BadRequest("currency must be a 3-letter code")
	}

	offered := u.rates.Rate(input.Amount, input.DurationDays)
	if !input.InterestRate.Equal(offered) {
		return nil, domainerrors.NewAppError(http.StatusBadRequest, rateMismatchMessage, domainerrors.ErrRateMismatch)
	}

	loan := &entities.Loan{
		BorrowerID:   borrowerID,
		BusinessID:   businessID,
		Amount:       input.Amount,
		Currency:     currency,
		Reason:       input.Reason,
		DurationDays: input.DurationDays,
		InterestRate: offered,
		Status:       entities.LoanStatusPending,
	}
	if err := u.loanRepo.Create(ctx, loan); err != nil {
		return nil, err
	}
	return loan, nil
}

// Get returns one of the borrower's loans. A loan owned by someone
// else behaves as not found.
func (u *LoanUsecase) Get(ctx context.Context, id, borrowerID uuid.UUID) (*entities.Loan, error) {
	return u.loanRepo.GetByIDForBorrower(ctx, id, borrowerID)
}

// List returns a page of the borrower's loans.
func (u *LoanUsecase) List(ctx context.Context, borrowerID uuid.UUID, page, limit int) ([]*entities.Loan, *utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)
	loans, total, err := u.loanRepo.ListByBorrower(ctx, borrowerID, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, nil, err
	}
	meta := utils.CalculateMeta(int64(total), params.Page, params.Limit)
	return loans, &meta, nil
}

// Cancel withdraws a pending loan request. Any other state belongs to
// back-office review and stays out of the borrower's reach.
func (u *LoanUsecase) Cancel(ctx context.Context, id, borrowerID uuid.UUID) (*entities.Loan, error) {
	loan, err := u.loanRepo.GetByIDForBorrower(ctx, id, borrowerID)
	if err != nil {
		return nil, err
	}
	if loan.Status != entities.LoanStatusPending {
		return nil, domainerrors.Conflict("only pending loans can be cancelled", domainerrors.ErrLoanNotPending)
	}

	if err := u.loanRepo.UpdateStatus(ctx, id, entities.LoanStatusCancelled); err != nil {
		return nil, err
	}
	return u.loanRepo.GetByIDForBorrower(ctx, id, borrowerID)
}
