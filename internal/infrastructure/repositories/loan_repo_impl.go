package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"borrowbank.backend/internal/domain/entities"
	domainerrors "borrowbank.backend/internal/domain/errors"
	"borrowbank.backend/internal/infrastructure/models"
	"borrowbank.backend/pkg/utils"
)

// LoanRepositoryImpl implements LoanRepository with GORM.
type LoanRepositoryImpl struct {
	db *gorm.DB
}

func NewLoanRepository(db *gorm.DB) *LoanRepositoryImpl {
	return &LoanRepositoryImpl{db: db}
}

func (r *LoanRepositoryImpl) Create(ctx context.Context, loan *entities.Loan) error {
	if loan.ID == uuid.Nil {
		loan.ID = utils.GenerateUUIDv7()
	}
	now := time.Now()
	m := &models.Loan{
		ID:           loan.ID,
		BorrowerID:   loan.BorrowerID,
		BusinessID:   loan.BusinessID,
		Amount:       loan.Amount,
		Currency:     loan.Currency,
		Reason:       loan.Reason,
		DurationDays: loan.DurationDays,
		InterestRate: loan.InterestRate,
		Status:       string(loan.Status),
		CreatedAt:    now,
		ModifiedAt:   now,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	loan.CreatedAt = m.CreatedAt
	loan.ModifiedAt = m.ModifiedAt
	return nil
}

// GetByIDForBorrower returns the loan only when it belongs to
// borrowerID, so a foreign loan is indistinguishable from a missing
// one.
func (r *LoanRepositoryImpl) GetByIDForBorrower(ctx context.Context, id, borrowerID uuid.UUID) (*entities.Loan, error) {
	var m models.Loan
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("id = ? AND borrower_id = ?", id, borrowerID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *LoanRepositoryImpl) ListByBorrower(ctx context.Context, borrowerID uuid.UUID, limit, offset int) ([]*entities.Loan, int, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var total int64
	if err := db.Model(&models.Loan{}).
		Where("borrower_id = ?", borrowerID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Where("borrower_id = ?", borrowerID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var ms []models.Loan
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	loans := make([]*entities.Loan, 0, len(ms))
	for i := range ms {
		loans = append(loans, r.toEntity(&ms[i]))
	}
	return loans, int(total), nil
}

func (r *LoanRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.LoanStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Loan{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      string(status),
			"modified_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *LoanRepositoryImpl) CountByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Loan{}).
		Where("business_id = ?", businessID).
		Count(&count).Error
	return count, err
}

func (r *LoanRepositoryImpl) toEntity(m *models.Loan) *entities.Loan {
	return &entities.Loan{
		ID:           m.ID,
		BorrowerID:   m.BorrowerID,
		BusinessID:   m.BusinessID,
		Amount:       m.Amount,
		Currency:     m.Currency,
		Reason:       m.Reason,
		DurationDays: m.DurationDays,
		InterestRate: m.InterestRate,
		Status:       entities.LoanStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		ModifiedAt:   m.ModifiedAt,
	}
}
