package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Ta1kunjms/GensanWorks/internal/models"
	"github.com/Ta1kunjms/GensanWorks/internal/utils"
)

// JobListFilter narrows the jobs query. Status="" means any status;
// EmployerID="" means any employer.
type JobListFilter struct {
	EmployerID      string
	Status          string
	IncludeArchived bool
	Limit           int
}

type JobRepository interface {
	GetByID(ctx context.Context, id string) (*models.Job, error)
	Create(ctx context.Context, j *models.Job) error
	Save(ctx context.Context, j *models.Job) error
	List(ctx context.Context, f JobListFilter) ([]*models.Job, error)
}

type jobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*models.Job, error) {
	var j models.Job
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&j).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &j, err
}

func (r *jobRepo) Create(ctx context.Context, j *models.Job) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *jobRepo) Save(ctx context.Context, j *models.Job) error {
	return r.db.WithContext(ctx).Save(j).Error
}

func (r *jobRepo) List(ctx context.Context, f JobListFilter) ([]*models.Job, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if f.EmployerID != "" {
		q = q.Where("employer_id = ?", f.EmployerID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if !f.IncludeArchived {
		q = q.Where("archived = ?", false)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	var out []*models.Job
	err := q.Find(&out).Error
	return out, err
}
