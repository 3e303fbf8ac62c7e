package dto

import (
	"time"

	"librarymgmt/internal/http-api/models"
)

// BookRequest is the body for creating or updating a book.
type BookRequest struct {
	Title         string `json:"title" binding:"required"`
	Author        string `json:"author" binding:"required"`
	Publisher     string `json:"publisher" binding:"required"`
	PublishedYear int    `json:"publishedYear" binding:"gt=0"`
	Location      string `json:"location" binding:"required"`
	TypeCode      int    `json:"typeCode" binding:"min=1,max=999"`
	// Status is only honoured on update
	Status models.BookStatus `json:"status" binding:"omitempty,oneof=AVAILABLE RENTAL LOST"`
}

// BookSearchQuery binds the catalog filters and paging.
type BookSearchQuery struct {
	PageQuery
	Title  string            `form:"title"`
	Author string            `form:"author"`
	Status models.BookStatus `form:"status" binding:"omitempty,oneof=AVAILABLE RENTAL LOST"`
}

// BookOverview is a catalog row.
type BookOverview struct {
	ID     int64             `json:"id"`
	Title  string            `json:"title"`
	Author string            `json:"author"`
	Status models.BookStatus `json:"status"`
}

// BookInfoResponse is the full book detail.
type BookInfoResponse struct {
	ID            int64             `json:"id"`
	Title         string            `json:"title"`
	Author        string            `json:"author"`
	Publisher     string            `json:"publisher"`
	PublishedYear int               `json:"publishedYear"`
	Location      string            `json:"location"`
	TypeCode      int               `json:"typeCode"`
	Status        models.BookStatus `json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

func FromBookToOverview(b *models.Book) BookOverview {
	return BookOverview{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		Status: b.Status,
	}
}

func FromBook(b *models.Book) *BookInfoResponse {
	return &BookInfoResponse{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		Publisher:     b.Publisher,
		PublishedYear: b.PublishedYear,
		Location:      b.Location,
		TypeCode:      b.TypeCode,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
