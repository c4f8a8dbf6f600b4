package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"borrowbank.backend/internal/domain/entities"
	domainerrors "borrowbank.backend/internal/domain/errors"
)

func seedBusiness(t *testing.T, repo *BusinessRepositoryImpl, ownerID uuid.UUID) *entities.Business {
	t.Helper()
	business := &entities.Business{
		OwnerID:       ownerID,
		Name:          "Acme Bakery",
		Address:       "1 High Street, London",
		CompanyNumber: "12345678",
		Sector:        entities.SectorFoodAndDrink,
	}
	require.NoError(t, repo.Create(context.Background(), business))
	return business
}

func TestBusinessCreateAndGetForOwner(t *testing.T) {
	db := newTestDB(t)
	createBusinessTable(t, db)
	createLoanTable(t, db)
	repo := NewBusinessRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	business := seedBusiness(t, repo, ownerID)
	assert.True(t, business.ValidatedAt.Valid)

	got, err := repo.GetByIDForOwner(ctx, business.ID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Bakery", got.Name)
	assert.Equal(t, entities.SectorFoodAndDrink, got.Sector)
	assert.Zero(t, got.LoanCount)
}

func TestBusinessGetForOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	createBusinessTable(t, db)
	createLoanTable(t, db)
	repo := NewBusinessRepository(db)
	ctx := context.Background()

	business := seedBusiness(t, repo, uuid.New())

	// Another borrower sees not found, not forbidden.
	_, err := repo.GetByIDForOwner(ctx, business.ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestBusinessListByOwnerWithLoanCounts(t *testing.T) {
	db := newTestDB(t)
	createBusinessTable(t, db)
	createLoanTable(t, db)
	repo := NewBusinessRepository(db)
	loanRepo := NewLoanRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	first := seedBusiness(t, repo, ownerID)
	second := &entities.Business{
		OwnerID:       ownerID,
		Name:          "Acme Consulting",
		Address:       "2 High Street, London",
		CompanyNumber: "87654321",
		Sector:        entities.SectorProfessionalServices,
	}
	require.NoError(t, repo.Create(ctx, second))

	require.NoError(t, loanRepo.Create(ctx, &entities.Loan{
		BorrowerID:   ownerID,
		BusinessID:   first.ID,
		Amount:       decimal.NewFromInt(20000),
		Currency:     "GBP",
		Reason:       "new ovens",
		DurationDays: 365,
		InterestRate: decimal.RequireFromString("0.05000"),
		Status:       entities.LoanStatusPending,
	}))

	businesses, err := repo.ListByOwner(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, businesses, 2)
	assert.Equal(t, int64(1), businesses[0].LoanCount)
	assert.Equal(t, int64(0), businesses[1].LoanCount)
}

func TestBusinessUpdate(t *testing.T) {
	db := newTestDB(t)
	createBusinessTable(t, db)
	createLoanTable(t, db)
	repo := NewBusinessRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	business := seedBusiness(t, repo, ownerID)

	business.Name = "Acme Bakery Ltd"
	business.Sector = entities.SectorRetail
	require.NoError(t, repo.Update(ctx, business))

	got, err := repo.GetByIDForOwner(ctx, business.ID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Bakery Ltd", got.Name)
	assert.Equal(t, entities.SectorRetail, got.Sector)
}

func TestBusinessUpdateForeignOwnerNotFound(t *testing.T) {
	db := newTestDB(t)
	createBusinessTable(t, db)
	createLoanTable(t, db)
	repo := NewBusinessRepository(db)

	business := seedBusiness(t, repo, uuid.New())
	business.OwnerID = uuid.New()
	business.Name = "Hijacked"

	err := repo.Update(context.Background(), business)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestBusinessSoftDelete(t *testing.T) {
	db := newTestDB(t)
	createBusinessTable(t, db)
	createLoanTable(t, db)
	repo := NewBusinessRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	business := seedBusiness(t, repo, ownerID)

	require.NoError(t, repo.SoftDelete(ctx, business.ID))

	_, err := repo.GetByIDForOwner(ctx, business.ID, ownerID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.SoftDelete(ctx, business.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
