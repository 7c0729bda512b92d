package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Ta1kunjms/GensanWorks/internal/models"
	"github.com/Ta1kunjms/GensanWorks/internal/utils"
)

type ApplicantRepository interface {
	GetByID(ctx context.Context, id string) (*models.Applicant, error)
	GetByEmail(ctx context.Context, email string) (*models.Applicant, error)
	Create(ctx context.Context, a *models.Applicant) error
	Save(ctx context.Context, a *models.Applicant) error
	List(ctx context.Context, limit int, includeArchived bool) ([]*models.Applicant, error)
}

type applicantRepo struct {
	db *gorm.DB
}

func NewApplicantRepo(db *gorm.DB) ApplicantRepository {
	return &applicantRepo{db: db}
}

func (r *applicantRepo) GetByID(ctx context.Context, id string) (*models.Applicant, error) {
	var a models.Applicant
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &a, err
}

func (r *applicantRepo) GetByEmail(ctx context.Context, email string) (*models.Applicant, error) {
	var a models.Applicant
	err := r.db.WithContext(ctx).Where("email = ?", email).Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &a, err
}

func (r *applicantRepo) Create(ctx context.Context, a *models.Applicant) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *applicantRepo) Save(ctx context.Context, a *models.Applicant) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *applicantRepo) List(ctx context.Context, limit int, includeArchived bool) ([]*models.Applicant, error) {
	q := r.db.WithContext(ctx).Order("updated_at DESC")
	if !includeArchived {
		q = q.Where("archived = ?", false)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []*models.Applicant
	err := q.Find(&out).Error
	return out, err
}
