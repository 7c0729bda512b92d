package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Ta1kunjms/GensanWorks/internal/models"
	"github.com/Ta1kunjms/GensanWorks/internal/utils"
)

type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
}

type adminRepo struct {
	db *gorm.DB
}

func NewAdminRepo(db *gorm.DB) AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var a models.Admin
	err := r.db.WithContext(ctx).Where("email = ?", email).Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &a, err
}
