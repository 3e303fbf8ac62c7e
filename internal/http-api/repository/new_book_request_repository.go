package repository

import (
	"context"
	"fmt"

	"librarymgmt/internal/http-api/models"

	"gorm.io/gorm"
)

type NewBookRequestRepository interface {
	Create(ctx context.Context, request *models.NewBookRequest) error
	FindByID(ctx context.Context, id int64) (*models.NewBookRequest, error)
	FindAll(ctx context.Context, status models.RequestStatus, page Page) ([]models.NewBookRequest, int64, error)
}

type newBookRequestRepository struct {
	db *gorm.DB
}

func NewNewBookRequestRepository(db *gorm.DB) NewBookRequestRepository {
	return &newBookRequestRepository{db: db}
}

func (r *newBookRequestRepository) Create(ctx context.Context, request *models.NewBookRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return fmt.Errorf("create new book request: %w", err)
	}
	return nil
}

func (r *newBookRequestRepository) FindByID(ctx context.Context, id int64) (*models.NewBookRequest, error) {
	var request models.NewBookRequest
	if err := r.db.WithContext(ctx).Joins("Member").First(&request, id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// FindAll pages through requests, newest first. An empty status means all.
func (r *newBookRequestRepository) FindAll(ctx context.Context, status models.RequestStatus, page Page) ([]models.NewBookRequest, int64, error) {
	var requests []models.NewBookRequest
	var total int64

	filter := func(db *gorm.DB) *gorm.DB {
		if status != "" {
			return db.Where("request_status = ?", status)
		}
		return db
	}

	if err := r.db.WithContext(ctx).Model(&models.NewBookRequest{}).
		Scopes(filter).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count new book requests: %w", err)
	}

	if err := r.db.WithContext(ctx).
		Scopes(filter).
		Preload("Member").
		Order("id DESC").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&requests).Error; err != nil {
		return nil, 0, fmt.Errorf("list new book requests: %w", err)
	}

	return requests, total, nil
}
