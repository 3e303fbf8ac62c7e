package service

import (
	"errors"

	"librarymgmt/internal/http-api/dto"
	"librarymgmt/internal/http-api/models"
)

func (s *serviceSuite) rent(code string, bookID int64) (*dto.RentalResponse, error) {
	return s.rentals.RentBook(s.ctx, dto.RentalCreateRequest{MemberCode: code, BookID: bookID})
}

func (s *serviceSuite) TestRentAndReturn() {
	member := s.register("kim")
	book := s.shelve("Learning Go")

	rental, err := s.rent(member.MemberCode, book.ID)
	s.Require().NoError(err)
	s.Equal(models.RentalProceeding, rental.RentalStatus)
	s.Equal(models.BookRental, s.bookStatus(book.ID))
	s.Equal(models.RentalAvailable, s.memberStatus(member.MemberCode))

	returned, err := s.rentals.ReturnBook(s.ctx, rental.ID)
	s.Require().NoError(err)
	s.Equal(models.RentalReturned, returned.RentalStatus)
	s.NotNil(returned.ReturnedAt)
	s.Equal(models.BookAvailable, s.bookStatus(book.ID))

	_, err = s.rentals.ReturnBook(s.ctx, rental.ID)
	s.True(errors.Is(err, ErrAlreadyReturned))
}

func (s *serviceSuite) TestRent_LimitMakesMemberUnavailable() {
	member := s.register("kim")
	first := s.shelve("A")
	second := s.shelve("B")
	third := s.shelve("C")

	_, err := s.rent(member.MemberCode, first.ID)
	s.Require().NoError(err)
	rental, err := s.rent(member.MemberCode, second.ID)
	s.Require().NoError(err)
	s.Equal(models.RentalUnavailable, s.memberStatus(member.MemberCode))

	_, err = s.rent(member.MemberCode, third.ID)
	s.True(errors.Is(err, ErrRentalUnavailable))
	s.Equal(models.BookAvailable, s.bookStatus(third.ID))

	_, err = s.rentals.ReturnBook(s.ctx, rental.ID)
	s.Require().NoError(err)
	s.Equal(models.RentalAvailable, s.memberStatus(member.MemberCode))
}

func (s *serviceSuite) TestRent_BookAlreadyRented() {
	kim := s.register("kim")
	park := s.register("park")
	book := s.shelve("Learning Go")

	_, err := s.rent(kim.MemberCode, book.ID)
	s.Require().NoError(err)

	_, err = s.rent(park.MemberCode, book.ID)
	s.True(errors.Is(err, ErrBookUnavailable))
}

func (s *serviceSuite) TestRent_Unknown() {
	member := s.register("kim")
	book := s.shelve("Learning Go")

	_, err := s.rent("999999", book.ID)
	s.True(errors.Is(err, ErrNotFound))
	_, err = s.rent(member.MemberCode, 42)
	s.True(errors.Is(err, ErrNotFound))
	_, err = s.rentals.ReturnBook(s.ctx, 42)
	s.True(errors.Is(err, ErrNotFound))
}
