package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"borrowbank.backend/internal/domain/entities"
	domainerrors "borrowbank.backend/internal/domain/errors"
	"borrowbank.backend/internal/infrastructure/models"
	"borrowbank.backend/pkg/utils"
)

// BusinessRepositoryImpl implements BusinessRepository with GORM.
type BusinessRepositoryImpl struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) *BusinessRepositoryImpl {
	return &BusinessRepositoryImpl{db: db}
}

func (r *BusinessRepositoryImpl) Create(ctx context.Context, business *entities.Business) error {
	if business.ID == uuid.Nil {
		business.ID = utils.GenerateUUIDv7()
	}
	now := time.Now()
	m := &models.Business{
		ID:            business.ID,
		OwnerID:       business.OwnerID,
		Name:          business.Name,
		Address:       business.Address,
		CompanyNumber: business.CompanyNumber,
		Sector:        string(business.Sector),
		CreatedAt:     now,
		ValidatedAt:   &now,
		UpdatedAt:     now,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	business.CreatedAt = m.CreatedAt
	business.ValidatedAt = null.TimeFromPtr(m.ValidatedAt)
	return nil
}

// GetByIDForOwner returns the business only when it belongs to ownerID,
// so a foreign business is indistinguishable from a missing one.
func (r *BusinessRepositoryImpl) GetByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*entities.Business, error) {
	var m models.Business
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	business := r.toEntity(&m)
	if err := r.fillLoanCount(ctx, business); err != nil {
		return nil, err
	}
	return business, nil
}

func (r *BusinessRepositoryImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Business, error) {
	var ms []models.Business
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	businesses := make([]*entities.Business, 0, len(ms))
	for i := range ms {
		business := r.toEntity(&ms[i])
		if err := r.fillLoanCount(ctx, business); err != nil {
			return nil, err
		}
		businesses = append(businesses, business)
	}
	return businesses, nil
}

func (r *BusinessRepositoryImpl) Update(ctx context.Context, business *entities.Business) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Business{}).
		Where("id = ? AND owner_id = ?", business.ID, business.OwnerID).
		Updates(map[string]interface{}{
			"name":           business.Name,
			"address":        business.Address,
			"company_number": business.CompanyNumber,
			"sector":         string(business.Sector),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *BusinessRepositoryImpl) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Business{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *BusinessRepositoryImpl) fillLoanCount(ctx context.Context, business *entities.Business) error {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Loan{}).
		Where("business_id = ?", business.ID).
		Count(&count).Error
	if err != nil {
		return err
	}
	business.LoanCount = count
	return nil
}

func (r *BusinessRepositoryImpl) toEntity(m *models.Business) *entities.Business {
	return &entities.Business{
		ID:            m.ID,
		OwnerID:       m.OwnerID,
		Name:          m.Name,
		Address:       m.Address,
		CompanyNumber: m.CompanyNumber,
		Sector:        entities.BusinessSector(m.Sector),
		CreatedAt:     m.CreatedAt,
		ValidatedAt:   null.TimeFromPtr(m.ValidatedAt),
	}
}
