package usecases

import (
	"context"
	"regexp"

	"github.com/google/uuid"

	"borrowbank.backend/internal/domain/entities"
	domainerrors "borrowbank.backend/internal/domain/errors"
	"borrowbank.backend/internal/domain/repositories"
)

var companyNumberPattern = regexp.MustCompile(`^[0-9]{8}$`)

// BusinessUsecase handles business registration and management.
type BusinessUsecase struct {
	businessRepo repositories.BusinessRepository
	loanRepo     repositories.LoanRepository
}

// NewBusinessUsecase creates a new business usecase.
func NewBusinessUsecase(
	businessRepo repositories.BusinessRepository,
	loanRepo repositories.LoanRepository,
) *BusinessUsecase {
	return &BusinessUsecase{
		businessRepo: businessRepo,
		loanRepo:     loanRepo,
	}
}

func validateBusinessInput(input *entities.BusinessInput) error {
	if !companyNumberPattern.MatchString(input.CompanyNumber) {
		return domainerrors.BadRequest("company number must be exactly 8 digits")
	}
	if !entities.ValidSector(input.Sector) {
		return domainerrors.BadRequest("unknown business sector")
	}
	return nil
}

// Create registers a business for the given borrower.
func (u *BusinessUsecase) Create(ctx context.Context, ownerID uuid.UUID, input *entities.BusinessInput) (*entities.Business, error) {
	if err := validateBusinessInput(input); err != nil {
		return nil, err
	}

	business := &entities.Business{
		OwnerID:       ownerID,
		Name:          input.Name,
		Address:       input.Address,
		CompanyNumber: input.CompanyNumber,
		Sector:        input.Sector,
	}
	if err := u.businessRepo.Create(ctx, business); err != nil {
		return nil, err
	}
	return business, nil
}

// Get returns one of the borrower's businesses. A business owned by
// someone else behaves as not found.
func (u *BusinessUsecase) Get(ctx context.Context, id, ownerID uuid.UUID) (*entities.Business, error) {
	return u.businessRepo.GetByIDForOwner(ctx, id, ownerID)
}

// List returns the borrower's businesses with their loan counts.
func (u *BusinessUsecase) List(ctx context.Context, ownerID uuid.UUID) ([]*entities.Business, error) {
	return u.businessRepo.ListByOwner(ctx, ownerID)
}

// Update replaces the business details. A business with loans is
// frozen and cannot be edited.
func (u *BusinessUsecase) Update(ctx context.Context, id, ownerID uuid.UUID, input *entities.BusinessInput) (*entities.Business, error) {
	business, err := u.businessRepo.GetByIDForOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	count, err := u.loanRepo.CountByBusiness(ctx, id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, domainerrors.Conflict("business with loans cannot be edited", domainerrors.ErrBusinessHasLoans)
	}

	if err := validateBusinessInput(input); err != nil {
		return nil, err
	}

	business.Name = input.Name
	business.Address = input.Address
	business.CompanyNumber = input.CompanyNumber
	business.Sector = input.Sector
	if err := u.businessRepo.Update(ctx, business); err != nil {
		return nil, err
	}
	return business, nil
}

// Delete removes the business. A business with loans cannot be
// deleted.
func (u *BusinessUsecase) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if _, err := u.businessRepo.GetByIDForOwner(ctx, id, ownerID); err != nil {
		return err
	}

	count, err := u.loanRepo.CountByBusiness(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domainerrors.Conflict("business with loans cannot be deleted", domainerrors.ErrBusinessHasLoans)
	}

	return u.businessRepo.SoftDelete(ctx, id)
}
