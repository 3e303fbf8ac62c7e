package repository

import (
	"context"
	"fmt"

	"librarymgmt/internal/http-api/models"

	"gorm.io/gorm"
)

type BookReviewRepository interface {
	Create(ctx context.Context, review *models.BookReview) error
	FindByID(ctx context.Context, id int64) (*models.BookReview, error)
	FindAllByBook(ctx context.Context, bookID int64, page Page) ([]models.BookReview, int64, error)
}

type bookReviewRepository struct {
	db *gorm.DB
}

func NewBookReviewRepository(db *gorm.DB) BookReviewRepository {
	return &bookReviewRepository{db: db}
}

func (r *bookReviewRepository) Create(ctx context.Context, review *models.BookReview) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

// FindByID loads the review together with its book and author.
func (r *bookReviewRepository) FindByID(ctx context.Context, id int64) (*models.BookReview, error) {
	var review models.BookReview
	err := r.db.WithContext(ctx).
		Preload("Book").
		Preload("Member").
		First(&review, id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *bookReviewRepository) FindAllByBook(ctx context.Context, bookID int64, page Page) ([]models.BookReview, int64, error) {
	var reviews []models.BookReview
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.BookReview{}).
		Where("book_id = ?", bookID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count reviews: %w", err)
	}

	err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Preload("Member").
		Order("created_at DESC, id DESC").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list reviews: %w", err)
	}

	return reviews, total, nil
}
