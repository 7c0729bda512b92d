package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Ta1kunjms/GensanWorks/internal/models"
	"github.com/Ta1kunjms/GensanWorks/internal/utils"
)

type EmployerRepository interface {
	GetByID(ctx context.Context, id string) (*models.Employer, error)
	GetByEmail(ctx context.Context, email string) (*models.Employer, error)
	Create(ctx context.Context, e *models.Employer) error
	Save(ctx context.Context, e *models.Employer) error
	List(ctx context.Context, limit int, includeArchived bool) ([]*models.Employer, error)
	Delete(ctx context.Context, id string) error
}

type employerRepo struct {
	db *gorm.DB
}

func NewEmployerRepo(db *gorm.DB) EmployerRepository {
	return &employerRepo{db: db}
}

func (r *employerRepo) GetByID(ctx context.Context, id string) (*models.Employer, error) {
	var e models.Employer
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &e, err
}

func (r *employerRepo) GetByEmail(ctx context.Context, email string) (*models.Employer, error) {
	var e models.Employer
	err := r.db.WithContext(ctx).Where("email = ?", email).Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &e, err
}

func (r *employerRepo) Create(ctx context.Context, e *models.Employer) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *employerRepo) Save(ctx context.Context, e *models.Employer) error {
	return r.db.WithContext(ctx).Save(e).Error
}

// List returns the roster ordered by last touch; finer filtering is derived
// in memory so the compliance predicates see full records.
func (r *employerRepo) List(ctx context.Context, limit int, includeArchived bool) ([]*models.Employer, error) {
	q := r.db.WithContext(ctx).Order("updated_at DESC")
	if !includeArchived {
		q = q.Where("archived = ?", false)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []*models.Employer
	err := q.Find(&out).Error
	return out, err
}

// Delete is a hard delete, used only by the admin bulk purge.
func (r *employerRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Employer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
