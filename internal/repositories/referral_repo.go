package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Ta1kunjms/GensanWorks/internal/models"
	"github.com/Ta1kunjms/GensanWorks/internal/utils"
)

type ReferralRepository interface {
	GetByID(ctx context.Context, id string) (*models.Referral, error)
	Create(ctx context.Context, ref *models.Referral) error
	Save(ctx context.Context, ref *models.Referral) error
	ListByApplicant(ctx context.Context, applicantID string) ([]*models.Referral, error)
}

type referralRepo struct {
	db *gorm.DB
}

func NewReferralRepo(db *gorm.DB) ReferralRepository {
	return &referralRepo{db: db}
}

func (r *referralRepo) GetByID(ctx context.Context, id string) (*models.Referral, error) {
	var ref models.Referral
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&ref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &ref, err
}

func (r *referralRepo) Create(ctx context.Context, ref *models.Referral) error {
	return r.db.WithContext(ctx).Create(ref).Error
}

func (r *referralRepo) Save(ctx context.Context, ref *models.Referral) error {
	return r.db.WithContext(ctx).Save(ref).Error
}

func (r *referralRepo) ListByApplicant(ctx context.Context, applicantID string) ([]*models.Referral, error) {
	var out []*models.Referral
	err := r.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}
