package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"borrowbank.backend/internal/domain/entities"
	domainerrors "borrowbank.backend/internal/domain/errors"
	"borrowbank.backend/internal/domain/repositories"
	"borrowbank.backend/internal/infrastructure/notification"
	"borrowbank.backend/pkg/phone"
	"borrowbank.backend/pkg/verification"
)

// BorrowerUsecase handles phone verification and borrower activation.
type BorrowerUsecase struct {
	userRepo     repositories.UserRepository
	borrowerRepo repositories.BorrowerProfileRepository
	uow          repositories.UnitOfWork
	dispatcher   notification.Dispatcher
	phoneSecret  string
}

// NewBorrowerUsecase creates a new borrower usecase.
func NewBorrowerUsecase(
	userRepo repositories.UserRepository,
	borrowerRepo repositories.BorrowerProfileRepository,
	uow repositories.UnitOfWork,
	dispatcher notification.Dispatcher,
	phoneSecret string,
) *BorrowerUsecase {
	return &BorrowerUsecase{
		userRepo:     userRepo,
		borrowerRepo: borrowerRepo,
		uow:          uow,
		dispatcher:   dispatcher,
		phoneSecret:  phoneSecret,
	}
}

// VerifyPhone dispatches a verification code to the given number. The
// code is derived from the number, so this never stores anything.
func (u *BorrowerUsecase) VerifyPhone(ctx context.Context, input *entities.VerifyPhoneInput) error {
	if !phone.IsValid(input.PhoneNumber) {
		return domainerrors.ErrInvalidPhoneNumber
	}
	return u.dispatcher.DispatchVerification(ctx, input.PhoneNumber)
}

// Activate turns a user into a borrower: it checks the verification
// code, claims the phone number and writes the user's names and the
// new profile in one transaction. A user who already has a profile
// gets it back unchanged with a redirect hint.
func (u *BorrowerUsecase) Activate(ctx context.Context, userID uuid.UUID, input *entities.ActivateBorrowerInput) (*entities.ActivateBorrowerResponse, error) {
	existing, err := u.borrowerRepo.GetByUserID(ctx, userID)
	if err == nil {
		return &entities.ActivateBorrowerResponse{
			Profile:  existing,
			Message:  "account already activated",
			Redirect: "/",
		}, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	if !phone.IsValid(input.PhoneNumber) {
		return nil, domainerrors.ErrInvalidPhoneNumber
	}
	if !input.HasSigned {
		return nil, domainerrors.BadRequest("the agreement must be signed")
	}
	if verification.GenerateCode(input.PhoneNumber, u.phoneSecret) != input.Code {
		return nil, domainerrors.ErrInvalidCode
	}

	taken, err := u.borrowerRepo.PhoneNumberExists(ctx, input.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domainerrors.ErrPhoneNumberTaken
	}

	profile := &entities.BorrowerProfile{
		UserID:      userID,
		PhoneNumber: input.PhoneNumber,
		IsVerified:  true,
		HasSigned:   true,
	}
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.UpdateNames(txCtx, userID, input.FirstName, input.LastName); err != nil {
			return err
		}
		return u.borrowerRepo.Create(txCtx, profile)
	})
	if err != nil {
		return nil, err
	}

	return &entities.ActivateBorrowerResponse{
		Profile:  profile,
		Message:  "account activated",
		Redirect: "/",
		Created:  true,
	}, nil
}

// GetProfile returns the borrower profile for a user.
func (u *BorrowerUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entities.BorrowerProfile, error) {
	return u.borrowerRepo.GetByUserID(ctx, userID)
}
