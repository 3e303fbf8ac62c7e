package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"librarymgmt/internal/cache"
	"librarymgmt/internal/http-api/dto"
	"librarymgmt/internal/http-api/repository"
)

const (
	rentedCountCacheKey = "recommend:rented-count:%d"
	reviewRateCacheKey  = "recommend:review-rate:%d"
)

type BookRecommendService interface {
	GetRecommendBookListByRentalCount(ctx context.Context) ([]dto.RentedCount, error)
	GetRecommendBookListByReviewRate(ctx context.Context) ([]dto.ReviewRate, error)
}

type bookRecommendService struct {
	recommendRepo repository.BookRecommendRepository
	cache         cache.Cache
	limit         int
	ttl           time.Duration
	logger        *slog.Logger
}

// NewBookRecommendService returns at most limit books per ranking and keeps
// each ranking in c for ttl. A nil cache disables caching.
func NewBookRecommendService(
	recommendRepo repository.BookRecommendRepository,
	c cache.Cache,
	limit int,
	ttl time.Duration,
	logger *slog.Logger,
) BookRecommendService {
	if c == nil {
		c = (*cache.RedisCache)(nil)
	}
	return &bookRecommendService{
		recommendRepo: recommendRepo,
		cache:         c,
		limit:         limit,
		ttl:           ttl,
		logger:        logger,
	}
}

func (s *bookRecommendService) GetRecommendBookListByRentalCount(ctx context.Context) ([]dto.RentedCount, error) {
	key := fmt.Sprintf(rentedCountCacheKey, s.limit)

	var cached []dto.RentedCount
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	rows, err := s.recommendRepo.TopByRentalCount(ctx, s.limit)
	if err != nil {
		return nil, err
	}

	result := make([]dto.RentedCount, 0, len(rows))
	for _, r := range rows {
		result = append(result, dto.RentedCount{
			BookID:      r.BookID,
			Title:       r.Title,
			Author:      r.Author,
			Publisher:   r.Publisher,
			RentedCount: r.RentedCount,
		})
	}

	s.toCache(ctx, key, result)
	return result, nil
}

func (s *bookRecommendService) GetRecommendBookListByReviewRate(ctx context.Context) ([]dto.ReviewRate, error) {
	key := fmt.Sprintf(reviewRateCacheKey, s.limit)

	var cached []dto.ReviewRate
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	rows, err := s.recommendRepo.TopByReviewRate(ctx, s.limit)
	if err != nil {
		return nil, err
	}

	result := make([]dto.ReviewRate, 0, len(rows))
	for _, r := range rows {
		result = append(result, dto.ReviewRate{
			BookID:      r.BookID,
			Title:       r.Title,
			Author:      r.Author,
			Publisher:   r.Publisher,
			ReviewRate:  r.ReviewRate,
			ReviewCount: r.ReviewCount,
		})
	}

	s.toCache(ctx, key, result)
	return result, nil
}

// cache failures are logged and ignored
func (s *bookRecommendService) fromCache(ctx context.Context, key string, dst any) bool {
	hit, err := s.cache.GetJSON(ctx, key, dst)
	if err != nil {
		s.logger.Warn("recommendation cache read failed", "key", key, "error", err)
		return false
	}
	return hit
}

func (s *bookRecommendService) toCache(ctx context.Context, key string, value any) {
	if s.ttl <= 0 {
		return
	}
	if err := s.cache.SetJSON(ctx, key, value, s.ttl); err != nil {
		s.logger.Warn("recommendation cache write failed", "key", key, "error", err)
	}
}
