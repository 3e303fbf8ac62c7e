package service

import (
	"context"
	"fmt"

	"librarymgmt/internal/http-api/dto"
	"librarymgmt/internal/http-api/models"
	"librarymgmt/internal/http-api/repository"
)

type BookService interface {
	SearchBook(ctx context.Context, q dto.BookSearchQuery) (*dto.PagedResponse[dto.BookOverview], error)
	GetBookData(ctx context.Context, bookID int64) (*dto.BookInfoResponse, error)
	CreateBook(ctx context.Context, req dto.BookRequest) (*dto.BookInfoResponse, error)
	UpdateBook(ctx context.Context, bookID int64, req dto.BookRequest) (*dto.BookInfoResponse, error)
	DeleteBook(ctx context.Context, bookID int64) error
}

type bookService struct {
	bookRepo repository.BookRepository
}

func NewBookService(bookRepo repository.BookRepository) BookService {
	return &bookService{bookRepo: bookRepo}
}

func (s *bookService) SearchBook(ctx context.Context, q dto.BookSearchQuery) (*dto.PagedResponse[dto.BookOverview], error) {
	page, size := q.Resolve()
	cond := repository.BookSearchCond{
		Title:  q.Title,
		Author: q.Author,
		Status: q.Status,
	}

	books, total, err := s.bookRepo.Search(ctx, cond, repository.NewPage(page, size))
	if err != nil {
		return nil, err
	}

	data := make([]dto.BookOverview, 0, len(books))
	for i := range books {
		data = append(data, dto.FromBookToOverview(&books[i]))
	}
	return dto.NewPagedResponse(data, page, size, total), nil
}

func (s *bookService) GetBookData(ctx context.Context, bookID int64) (*dto.BookInfoResponse, error) {
	book, err := s.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		return nil, translate(err, fmt.Sprintf("book %d", bookID))
	}
	return dto.FromBook(book), nil
}

// CreateBook shelves a new book; it always starts out AVAILABLE.
func (s *bookService) CreateBook(ctx context.Context, req dto.BookRequest) (*dto.BookInfoResponse, error) {
	book := &models.Book{
		Title:         req.Title,
		Author:        req.Author,
		Publisher:     req.Publisher,
		PublishedYear: req.PublishedYear,
		Location:      req.Location,
		TypeCode:      req.TypeCode,
		Status:        models.BookAvailable,
	}
	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, err
	}
	return dto.FromBook(book), nil
}

// UpdateBook overwrites the catalog data. Status may only move between
// AVAILABLE and LOST; lending goes through the rental flow.
func (s *bookService) UpdateBook(ctx context.Context, bookID int64, req dto.BookRequest) (*dto.BookInfoResponse, error) {
	book, err := s.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		return nil, translate(err, fmt.Sprintf("book %d", bookID))
	}

	if req.Status != "" && req.Status != book.Status {
		if book.Status == models.BookRental || req.Status == models.BookRental {
			return nil, fmt.Errorf("book %d status %s -> %s: %w", bookID, book.Status, req.Status, ErrBookUnavailable)
		}
		book.Status = req.Status
	}

	book.Title = req.Title
	book.Author = req.Author
	book.Publisher = req.Publisher
	book.PublishedYear = req.PublishedYear
	book.Location = req.Location
	book.TypeCode = req.TypeCode

	if err := s.bookRepo.Update(ctx, book); err != nil {
		return nil, err
	}
	return dto.FromBook(book), nil
}

// DeleteBook removes a book that is not lent out and has no rental history.
func (s *bookService) DeleteBook(ctx context.Context, bookID int64) error {
	what := fmt.Sprintf("book %d", bookID)

	book, err := s.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		return translate(err, what)
	}
	if book.Status == models.BookRental {
		return fmt.Errorf("%s is rented: %w", what, ErrBookUnavailable)
	}

	return translate(s.bookRepo.Delete(ctx, bookID), what)
}
