package repository

import (
	"errors"

	"librarymgmt/internal/http-api/models"
)

func (s *repositorySuite) TestRental_LendAndReturn() {
	member := newMember("kim", models.RentalAvailable, "123456")
	book := newBook("Learning Go", "Bodner", models.BookAvailable)
	s.insert(member, book)
	repo := NewRentalRepository(s.db)

	rental, err := repo.Lend(s.ctx, member.ID, book.ID, models.RentalUnavailable)
	s.Require().NoError(err)
	s.NotZero(rental.ID)
	s.Equal(models.RentalProceeding, rental.Status)

	var storedBook models.Book
	s.Require().NoError(s.db.First(&storedBook, book.ID).Error)
	s.Equal(models.BookRental, storedBook.Status)

	var storedMember models.Member
	s.Require().NoError(s.db.First(&storedMember, member.ID).Error)
	s.Equal(models.RentalUnavailable, storedMember.RentalStatus)

	count, err := repo.CountProceedingByMember(s.ctx, member.ID)
	s.Require().NoError(err)
	s.EqualValues(1, count)

	s.Require().NoError(repo.Return(s.ctx, rental, models.RentalAvailable))
	s.Equal(models.RentalReturned, rental.Status)
	s.NotNil(rental.ReturnedAt)

	s.Require().NoError(s.db.First(&storedBook, book.ID).Error)
	s.Equal(models.BookAvailable, storedBook.Status)
	s.Require().NoError(s.db.First(&storedMember, member.ID).Error)
	s.Equal(models.RentalAvailable, storedMember.RentalStatus)

	count, err = repo.CountProceedingByMember(s.ctx, member.ID)
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *repositorySuite) TestRental_LendRentedBook() {
	member := newMember("kim", models.RentalAvailable, "123456")
	book := newBook("Learning Go", "Bodner", models.BookRental)
	s.insert(member, book)
	repo := NewRentalRepository(s.db)

	_, err := repo.Lend(s.ctx, member.ID, book.ID, models.RentalAvailable)

	s.True(errors.Is(err, ErrStateChanged))
	var count int64
	s.db.Model(&models.Rental{}).Count(&count)
	s.Zero(count, "failed lending must not leave a rental behind")
}

func (s *repositorySuite) TestRental_ReturnTwice() {
	member := newMember("kim", models.RentalAvailable, "123456")
	book := newBook("Learning Go", "Bodner", models.BookAvailable)
	s.insert(member, book)
	repo := NewRentalRepository(s.db)

	rental, err := repo.Lend(s.ctx, member.ID, book.ID, models.RentalAvailable)
	s.Require().NoError(err)
	s.Require().NoError(repo.Return(s.ctx, rental, models.RentalAvailable))

	stale, err := repo.FindByID(s.ctx, rental.ID)
	s.Require().NoError(err)
	stale.Status = models.RentalProceeding

	s.True(errors.Is(repo.Return(s.ctx, stale, models.RentalAvailable), ErrStateChanged))
}
