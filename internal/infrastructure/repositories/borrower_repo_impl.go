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

// BorrowerProfileRepositoryImpl implements BorrowerProfileRepository
// with GORM.
type BorrowerProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewBorrowerProfileRepository(db *gorm.DB) *BorrowerProfileRepositoryImpl {
	return &BorrowerProfileRepositoryImpl{db: db}
}

func (r *BorrowerProfileRepositoryImpl) Create(ctx context.Context, profile *entities.BorrowerProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = utils.GenerateUUIDv7()
	}
	m := &models.BorrowerProfile{
		ID:          profile.ID,
		UserID:      profile.UserID,
		PhoneNumber: profile.PhoneNumber,
		IsVerified:  profile.IsVerified,
		HasSigned:   profile.HasSigned,
		CreatedAt:   time.Now(),
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	profile.CreatedAt = m.CreatedAt
	return nil
}

func (r *BorrowerProfileRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.BorrowerProfile, error) {
	var m models.BorrowerProfile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *BorrowerProfileRepositoryImpl) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.BorrowerProfile, error) {
	var m models.BorrowerProfile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *BorrowerProfileRepositoryImpl) PhoneNumberExists(ctx context.Context, phoneNumber string) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.BorrowerProfile{}).
		Where("phone_number = ?", phoneNumber).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BorrowerProfileRepositoryImpl) toEntity(m *models.BorrowerProfile) *entities.BorrowerProfile {
	return &entities.BorrowerProfile{
		ID:          m.ID,
		UserID:      m.UserID,
		PhoneNumber: m.PhoneNumber,
		IsVerified:  m.IsVerified,
		HasSigned:   m.HasSigned,
		CreatedAt:   m.CreatedAt,
	}
}
