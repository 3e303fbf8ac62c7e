package service

import (
	"context"
	"fmt"

	"librarymgmt/internal/http-api/dto"
	"librarymgmt/internal/http-api/models"
	"librarymgmt/internal/http-api/repository"
)

type BookReviewService interface {
	GetBookReviewList(ctx context.Context, bookID int64, page, size int) (*dto.PagedResponse[dto.BookReviewOverview], error)
	GetReviewData(ctx context.Context, bookID, reviewID int64) (*dto.BookReviewDetail, error)
	CreateReview(ctx context.Context, memberCode string, bookID int64, req dto.ReviewCreateRequest) (*dto.BookReviewDetail, error)
}

type bookReviewService struct {
	reviewRepo repository.BookReviewRepository
	bookRepo   repository.BookRepository
	memberRepo repository.MemberRepository
}

func NewBookReviewService(
	reviewRepo repository.BookReviewRepository,
	bookRepo repository.BookRepository,
	memberRepo repository.MemberRepository,
) BookReviewService {
	return &bookReviewService{
		reviewRepo: reviewRepo,
		bookRepo:   bookRepo,
		memberRepo: memberRepo,
	}
}

// GetBookReviewList pages through a book's reviews, newest first.
func (s *bookReviewService) GetBookReviewList(ctx context.Context, bookID int64, page, size int) (*dto.PagedResponse[dto.BookReviewOverview], error) {
	if _, err := s.bookRepo.FindByID(ctx, bookID); err != nil {
		return nil, translate(err, fmt.Sprintf("book %d", bookID))
	}

	reviews, total, err := s.reviewRepo.FindAllByBook(ctx, bookID, repository.NewPage(page, size))
	if err != nil {
		return nil, err
	}

	data := make([]dto.BookReviewOverview, 0, len(reviews))
	for i := range reviews {
		data = append(data, dto.FromReviewToOverview(&reviews[i]))
	}
	return dto.NewPagedResponse(data, page, size, total), nil
}

// GetReviewData returns a review only when it belongs to bookID.
func (s *bookReviewService) GetReviewData(ctx context.Context, bookID, reviewID int64) (*dto.BookReviewDetail, error) {
	what := fmt.Sprintf("review %d of book %d", reviewID, bookID)

	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, translate(err, what)
	}
	if review.BookID != bookID {
		return nil, fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return dto.FromReview(review), nil
}

func (s *bookReviewService) CreateReview(ctx context.Context, memberCode string, bookID int64, req dto.ReviewCreateRequest) (*dto.BookReviewDetail, error) {
	member, err := s.memberRepo.FindByMemberCode(ctx, memberCode)
	if err != nil {
		return nil, translate(err, "member "+memberCode)
	}
	book, err := s.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		return nil, translate(err, fmt.Sprintf("book %d", bookID))
	}

	review := &models.BookReview{
		BookID:        book.ID,
		MemberID:      member.ID,
		ReviewTitle:   req.ReviewTitle,
		ReviewContent: req.ReviewContent,
		ReviewRate:    req.ReviewRate,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	review.Book = book
	review.Member = member
	return dto.FromReview(review), nil
}
