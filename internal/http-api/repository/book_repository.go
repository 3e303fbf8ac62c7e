package repository

import (
	"context"
	"fmt"
	"strings"

	"librarymgmt/internal/http-api/models"

	"gorm.io/gorm"
)

// BookSearchCond holds the optional catalog filters. Empty fields are ignored.
type BookSearchCond struct {
	Title  string
	Author string
	Status models.BookStatus
}

type BookRepository interface {
	Create(ctx context.Context, book *models.Book) error
	Update(ctx context.Context, book *models.Book) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*models.Book, error)
	Search(ctx context.Context, cond BookSearchCond, page Page) ([]models.Book, int64, error)
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, book *models.Book) error {
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	// GORM will populate book.ID and book.CreatedAt
	return nil
}

func (r *bookRepository) Update(ctx context.Context, book *models.Book) error {
	if err := r.db.WithContext(ctx).Save(book).Error; err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Book{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete book: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *bookRepository) FindByID(ctx context.Context, id int64) (*models.Book, error) {
	var book models.Book
	if err := r.db.WithContext(ctx).First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// Search pages through the catalog. Title and author match case-insensitively on
// substrings, status matches exactly; no filters returns every book.
func (r *bookRepository) Search(ctx context.Context, cond BookSearchCond, page Page) ([]models.Book, int64, error) {
	var books []models.Book
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Book{}).
		Scopes(bookFilter(cond)).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	if err := r.db.WithContext(ctx).
		Scopes(bookFilter(cond)).
		Order("id ASC").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&books).Error; err != nil {
		return nil, 0, fmt.Errorf("search books: %w", err)
	}

	return books, total, nil
}

func bookFilter(cond BookSearchCond) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if t := strings.TrimSpace(cond.Title); t != "" {
			db = db.Where("LOWER(title) LIKE ?", likePattern(t))
		}
		if a := strings.TrimSpace(cond.Author); a != "" {
			db = db.Where("LOWER(author) LIKE ?", likePattern(a))
		}
		if cond.Status != "" {
			db = db.Where("status = ?", cond.Status)
		}
		return db
	}
}

func likePattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
