package service

import (
	"errors"

	"librarymgmt/internal/http-api/dto"
	"librarymgmt/internal/http-api/models"
)

func (s *serviceSuite) TestCreateBook_StartsAvailable() {
	book := s.shelve("Learning Go")

	s.NotZero(book.ID)
	s.Equal(models.BookAvailable, book.Status)
	s.Equal(130, book.TypeCode)
}

func (s *serviceSuite) TestSearchBook() {
	s.shelve("Learning Go")
	s.shelve("Clean Code")
	s.shelve("Concurrency in Go")

	page, err := s.books.SearchBook(s.ctx, dto.BookSearchQuery{Title: "go"})

	s.Require().NoError(err)
	s.Equal(2, page.PageInfo.TotalElements)
	s.Equal(dto.DefaultPageSize, page.PageInfo.Size)
	s.Equal("Learning Go", page.Data[0].Title)
}

func (s *serviceSuite) TestGetBookData_NotFound() {
	_, err := s.books.GetBookData(s.ctx, 42)

	s.True(errors.Is(err, ErrNotFound))
}

func (s *serviceSuite) TestUpdateBook() {
	book := s.shelve("Learning Go")

	updated, err := s.books.UpdateBook(s.ctx, book.ID, dto.BookRequest{
		Title: "Learning Go 2nd", Author: "Bodner", Publisher: "O'Reilly",
		PublishedYear: 2024, Location: "B-2", TypeCode: 5, Status: models.BookLost,
	})

	s.Require().NoError(err)
	s.Equal("Learning Go 2nd", updated.Title)
	s.Equal(models.BookLost, updated.Status)
	s.Equal(models.BookLost, s.bookStatus(book.ID))
}

func (s *serviceSuite) TestUpdateBook_CannotMarkRented() {
	book := s.shelve("Learning Go")

	_, err := s.books.UpdateBook(s.ctx, book.ID, dto.BookRequest{
		Title: "Learning Go", Author: "a", Publisher: "p",
		PublishedYear: 2024, Location: "l", TypeCode: 5, Status: models.BookRental,
	})

	s.True(errors.Is(err, ErrBookUnavailable))
	s.Equal(models.BookAvailable, s.bookStatus(book.ID))
}

func (s *serviceSuite) TestDeleteBook() {
	book := s.shelve("Learning Go")

	s.Require().NoError(s.books.DeleteBook(s.ctx, book.ID))

	s.True(errors.Is(s.books.DeleteBook(s.ctx, book.ID), ErrNotFound))
}

func (s *serviceSuite) TestDeleteBook_Rented() {
	member := s.register("kim")
	book := s.shelve("Learning Go")
	_, err := s.rentals.RentBook(s.ctx, dto.RentalCreateRequest{MemberCode: member.MemberCode, BookID: book.ID})
	s.Require().NoError(err)

	s.True(errors.Is(s.books.DeleteBook(s.ctx, book.ID), ErrBookUnavailable))
}
