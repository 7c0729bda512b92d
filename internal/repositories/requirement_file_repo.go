package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/Ta1kunjms/GensanWorks/internal/models"
)

type RequirementFileRepository interface {
	Insert(ctx context.Context, f *models.RequirementFile) error
	ListByEmployer(ctx context.Context, employerID string) ([]*models.RequirementFile, error)
}

type requirementFileRepo struct {
	db *gorm.DB
}

func NewRequirementFileRepo(db *gorm.DB) RequirementFileRepository {
	return &requirementFileRepo{db: db}
}

func (r *requirementFileRepo) Insert(ctx context.Context, f *models.RequirementFile) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *requirementFileRepo) ListByEmployer(ctx context.Context, employerID string) ([]*models.RequirementFile, error) {
	var out []*models.RequirementFile
	err := r.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		Order("uploaded_at DESC").
		Find(&out).Error
	return out, err
}
