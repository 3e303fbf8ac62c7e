package repository

import (
	"context"
	"fmt"

	"librarymgmt/internal/http-api/models"

	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *models.Administrator) error
	FindByID(ctx context.Context, id int64) (*models.Administrator, error)
	FindByEmail(ctx context.Context, email string) (*models.Administrator, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, admin *models.Administrator) error {
	if err := r.db.WithContext(ctx).Create(admin).Error; err != nil {
		return fmt.Errorf("create administrator: %w", err)
	}
	return nil
}

func (r *adminRepository) FindByID(ctx context.Context, id int64) (*models.Administrator, error) {
	var admin models.Administrator
	if err := r.db.WithContext(ctx).First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*models.Administrator, error) {
	var admin models.Administrator
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
