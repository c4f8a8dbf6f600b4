package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"borrowbank.backend/internal/domain/entities"
	domainerrors "borrowbank.backend/internal/domain/errors"
)

// Activation writes the user's names and the new profile together; a
// failure inside the transaction must leave neither behind.
func TestUnitOfWorkCommit(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	createBorrowerProfileTable(t, db)

	userRepo := NewUserRepository(db)
	borrowerRepo := NewBorrowerProfileRepository(db)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	user := seedUser(t, userRepo, "jane")

	err := uow.Do(ctx, func(txCtx context.Context) error {
		if err := userRepo.UpdateNames(txCtx, user.ID, "Jane", "Doe"); err != nil {
			return err
		}
		return borrowerRepo.Create(txCtx, &entities.BorrowerProfile{
			UserID:      user.ID,
			PhoneNumber: "+447123456789",
			IsVerified:  true,
			HasSigned:   true,
		})
	})
	require.NoError(t, err)

	got, err := userRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.FirstName)

	_, err = borrowerRepo.GetByUserID(ctx, user.ID)
	assert.NoError(t, err)
}

func TestUnitOfWorkRollback(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	createBorrowerProfileTable(t, db)

	userRepo := NewUserRepository(db)
	borrowerRepo := NewBorrowerProfileRepository(db)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	user := seedUser(t, userRepo, "jane")
	boom := errors.New("boom")

	err := uow.Do(ctx, func(txCtx context.Context) error {
		if err := userRepo.UpdateNames(txCtx, user.ID, "Jane", "Doe"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := userRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, got.FirstName, "name update should have rolled back")

	_, err = borrowerRepo.GetByUserID(ctx, user.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestGetDBFallback(t *testing.T) {
	db := newTestDB(t)
	assert.Equal(t, db, GetDB(context.Background(), db))
}
