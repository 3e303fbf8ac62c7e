package dto

import (
	"time"

	"librarymgmt/internal/http-api/models"
)

// ReviewCreateRequest for a member reviewing a book
type ReviewCreateRequest struct {
	ReviewTitle   string `json:"reviewTitle" binding:"required,max=200"`
	ReviewContent string `json:"reviewContent" binding:"required"`
	ReviewRate    int    `json:"reviewRate" binding:"required,min=1,max=5"`
}

// BookReviewOverview for list views
type BookReviewOverview struct {
	ID          int64     `json:"id"`
	ReviewTitle string    `json:"reviewTitle"`
	ReviewRate  int       `json:"reviewRate"`
	MemberName  string    `json:"memberName"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BookReviewDetail includes the review body and the reviewed book
type BookReviewDetail struct {
	ID            int64     `json:"id"`
	BookID        int64     `json:"bookId"`
	BookTitle     string    `json:"bookTitle"`
	ReviewTitle   string    `json:"reviewTitle"`
	ReviewContent string    `json:"reviewContent"`
	ReviewRate    int       `json:"reviewRate"`
	MemberName    string    `json:"memberName"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromReviewToOverview(r *models.BookReview) BookReviewOverview {
	out := BookReviewOverview{
		ID:          r.ID,
		ReviewTitle: r.ReviewTitle,
		ReviewRate:  r.ReviewRate,
		CreatedAt:   r.CreatedAt,
	}
	if r.Member != nil {
		out.MemberName = r.Member.Name
	}
	return out
}

func FromReview(r *models.BookReview) *BookReviewDetail {
	out := &BookReviewDetail{
		ID:            r.ID,
		BookID:        r.BookID,
		ReviewTitle:   r.ReviewTitle,
		ReviewContent: r.ReviewContent,
		ReviewRate:    r.ReviewRate,
		CreatedAt:     r.CreatedAt,
	}
	if r.Book != nil {
		out.BookTitle = r.Book.Title
	}
	if r.Member != nil {
		out.MemberName = r.Member.Name
	}
	return out
}
