package repository

import (
	"context"
	"fmt"

	"librarymgmt/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NewBookRequestResultRepository interface {
	Create(ctx context.Context, result *models.NewBookRequestResult) error
	FindByRequestID(ctx context.Context, requestID int64) (*models.NewBookRequestResult, error)
	FindByAdminEmail(ctx context.Context, adminEmail string, page Page) ([]models.NewBookRequestResult, int64, error)
}

type newBookRequestResultRepository struct {
	db *gorm.DB
}

func NewNewBookRequestResultRepository(db *gorm.DB) NewBookRequestResultRepository {
	return &newBookRequestResultRepository{db: db}
}

// Create stores the result and moves the originating request out of WAITING in
// one transaction. A request that is no longer waiting yields ErrStateChanged.
func (r *newBookRequestResultRepository) Create(ctx context.Context, result *models.NewBookRequestResult) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updated := tx.Model(&models.NewBookRequest{}).
			Where("id = ? AND request_status = ?", result.NewBookRequestID, models.RequestWaiting).
			Update("request_status", result.ResultStatus)
		if updated.Error != nil {
			return fmt.Errorf("update request status: %w", updated.Error)
		}
		if updated.RowsAffected == 0 {
			return ErrStateChanged
		}

		if err := tx.Omit(clause.Associations).Create(result).Error; err != nil {
			return fmt.Errorf("create request result: %w", err)
		}
		return nil
	})
}

// FindByRequestID joins the originating request; there is at most one result per request.
func (r *newBookRequestResultRepository) FindByRequestID(ctx context.Context, requestID int64) (*models.NewBookRequestResult, error) {
	var result models.NewBookRequestResult
	err := r.db.WithContext(ctx).
		InnerJoins("NewBookRequest").
		Joins("Administrator").
		Where(clause.Eq{Column: clause.Column{Table: "NewBookRequest", Name: "id"}, Value: requestID}).
		First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// FindByAdminEmail pages through the results written by one administrator.
// The administrator and request are fetched in the same query as the rows.
func (r *newBookRequestResultRepository) FindByAdminEmail(ctx context.Context, adminEmail string, page Page) ([]models.NewBookRequestResult, int64, error) {
	var results []models.NewBookRequestResult
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.NewBookRequestResult{}).
		Joins("JOIN administrators ON administrators.id = new_book_request_results.administrator_id").
		Where("administrators.email = ?", adminEmail).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count request results: %w", err)
	}

	err := r.db.WithContext(ctx).
		InnerJoins("Administrator").
		InnerJoins("NewBookRequest").
		Where(clause.Eq{Column: clause.Column{Table: "Administrator", Name: "email"}, Value: adminEmail}).
		Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}, Desc: true}).
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&results).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list request results: %w", err)
	}

	return results, total, nil
}
