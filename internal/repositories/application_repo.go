package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Ta1kunjms/GensanWorks/internal/models"
	"github.com/Ta1kunjms/GensanWorks/internal/utils"
)

type ApplicationRepository interface {
	GetByID(ctx context.Context, id string) (*models.Application, error)
	Create(ctx context.Context, a *models.Application) error
	Save(ctx context.Context, a *models.Application) error
	Exists(ctx context.Context, jobID, applicantID string) (bool, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]*models.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]*models.Application, error)
}

type applicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*models.Application, error) {
	var a models.Application
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &a, err
}

func (r *applicationRepo) Create(ctx context.Context, a *models.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *applicationRepo) Save(ctx context.Context, a *models.Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *applicationRepo) Exists(ctx context.Context, jobID, applicantID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		Count(&count).Error
	return count > 0, err
}

func (r *applicationRepo) ListByApplicant(ctx context.Context, applicantID string) ([]*models.Application, error) {
	var out []*models.Application
	err := r.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *applicationRepo) ListByJob(ctx context.Context, jobID string) ([]*models.Application, error) {
	var out []*models.Application
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}
