package repository

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"gorm.io/gorm"
)

// RentedCountRow is one book ranked by how often it was rented.
type RentedCountRow struct {
	BookID      int64
	Title       string
	Author      string
	Publisher   string
	RentedCount int64
}

// ReviewRateRow is one book ranked by its average review rate.
type ReviewRateRow struct {
	BookID      int64
	Title       string
	Author      string
	Publisher   string
	ReviewRate  float64
	ReviewCount int64
}

type BookRecommendRepository interface {
	TopByRentalCount(ctx context.Context, limit int) ([]RentedCountRow, error)
	TopByReviewRate(ctx context.Context, limit int) ([]ReviewRateRow, error)
}

type bookRecommendRepository struct {
	db *gorm.DB
}

func NewBookRecommendRepository(db *gorm.DB) BookRecommendRepository {
	return &bookRecommendRepository{db: db}
}

func bookColumns(extra ...any) []any {
	return append([]any{
		goqu.I("b.id").As("book_id"),
		goqu.I("b.title"),
		goqu.I("b.author"),
		goqu.I("b.publisher"),
	}, extra...)
}

var bookGroupBy = []any{
	goqu.I("b.id"),
	goqu.I("b.title"),
	goqu.I("b.author"),
	goqu.I("b.publisher"),
}

// TopByRentalCount ranks books by every rental ever recorded (returned or not).
// Ties go to the lower book id.
func (r *bookRecommendRepository) TopByRentalCount(ctx context.Context, limit int) ([]RentedCountRow, error) {
	query, args, err := rentedCountQuery(limit).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build rented count query: %w", err)
	}

	var rows []RentedCountRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("rented count ranking: %w", err)
	}
	return rows, nil
}

// TopByReviewRate ranks books by average review rate, then by number of
// reviews, then by lower book id.
func (r *bookRecommendRepository) TopByReviewRate(ctx context.Context, limit int) ([]ReviewRateRow, error) {
	query, args, err := reviewRateQuery(limit).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build review rate query: %w", err)
	}

	var rows []ReviewRateRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("review rate ranking: %w", err)
	}
	return rows, nil
}

func rentedCountQuery(limit int) *goqu.SelectDataset {
	return goqu.From(goqu.T("books").As("b")).
		InnerJoin(goqu.T("rentals").As("r"), goqu.On(goqu.I("r.book_id").Eq(goqu.I("b.id")))).
		Select(bookColumns(goqu.COUNT(goqu.I("r.id")).As("rented_count"))...).
		GroupBy(bookGroupBy...).
		Order(goqu.I("rented_count").Desc(), goqu.I("b.id").Asc()).
		Limit(uint(limit)).
		Prepared(true)
}

func reviewRateQuery(limit int) *goqu.SelectDataset {
	return goqu.From(goqu.T("books").As("b")).
		InnerJoin(goqu.T("book_reviews").As("rv"), goqu.On(goqu.I("rv.book_id").Eq(goqu.I("b.id")))).
		Select(bookColumns(
			goqu.Cast(goqu.AVG(goqu.I("rv.review_rate")), "FLOAT").As("review_rate"),
			goqu.COUNT(goqu.I("rv.id")).As("review_count"),
		)...).
		GroupBy(bookGroupBy...).
		Order(goqu.I("review_rate").Desc(), goqu.I("review_count").Desc(), goqu.I("b.id").Asc()).
		Limit(uint(limit)).
		Prepared(true)
}
