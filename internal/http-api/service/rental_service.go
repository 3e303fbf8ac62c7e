package service

import (
	"context"
	"errors"
	"fmt"

	"librarymgmt/internal/http-api/dto"
	"librarymgmt/internal/http-api/models"
	"librarymgmt/internal/http-api/repository"
)

type RentalService interface {
	RentBook(ctx context.Context, req dto.RentalCreateRequest) (*dto.RentalResponse, error)
	ReturnBook(ctx context.Context, rentalID int64) (*dto.RentalResponse, error)
}

type rentalService struct {
	rentalRepo repository.RentalRepository
	memberRepo repository.MemberRepository
	bookRepo   repository.BookRepository
	maxRentals int64
}

// NewRentalService lets each member hold at most maxRentals books at once.
func NewRentalService(
	rentalRepo repository.RentalRepository,
	memberRepo repository.MemberRepository,
	bookRepo repository.BookRepository,
	maxRentals int,
) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		memberRepo: memberRepo,
		bookRepo:   bookRepo,
		maxRentals: int64(maxRentals),
	}
}

// RentBook lends an AVAILABLE book to a member who may still borrow. The
// member becomes RENTAL_UNAVAILABLE once they hold maxRentals books.
func (s *rentalService) RentBook(ctx context.Context, req dto.RentalCreateRequest) (*dto.RentalResponse, error) {
	member, err := s.memberRepo.FindByMemberCode(ctx, req.MemberCode)
	if err != nil {
		return nil, translate(err, "member "+req.MemberCode)
	}
	if member.RentalStatus != models.RentalAvailable {
		return nil, fmt.Errorf("member %s: %w", member.MemberCode, ErrRentalUnavailable)
	}

	book, err := s.bookRepo.FindByID(ctx, req.BookID)
	if err != nil {
		return nil, translate(err, fmt.Sprintf("book %d", req.BookID))
	}
	if book.Status != models.BookAvailable {
		return nil, fmt.Errorf("book %d is %s: %w", book.ID, book.Status, ErrBookUnavailable)
	}

	held, err := s.rentalRepo.CountProceedingByMember(ctx, member.ID)
	if err != nil {
		return nil, fmt.Errorf("count rentals: %w", err)
	}
	if held >= s.maxRentals {
		return nil, fmt.Errorf("member %s holds %d books: %w", member.MemberCode, held, ErrRentalUnavailable)
	}

	rental, err := s.rentalRepo.Lend(ctx, member.ID, book.ID, s.statusFor(held+1))
	if errors.Is(err, repository.ErrStateChanged) {
		return nil, fmt.Errorf("book %d: %w", book.ID, ErrBookUnavailable)
	}
	if err != nil {
		return nil, err
	}
	return dto.FromRental(rental), nil
}

// ReturnBook closes a proceeding rental and frees the member to borrow again.
func (s *rentalService) ReturnBook(ctx context.Context, rentalID int64) (*dto.RentalResponse, error) {
	what := fmt.Sprintf("rental %d", rentalID)

	rental, err := s.rentalRepo.FindByID(ctx, rentalID)
	if err != nil {
		return nil, translate(err, what)
	}
	if rental.Status == models.RentalReturned {
		return nil, fmt.Errorf("%s: %w", what, ErrAlreadyReturned)
	}

	held, err := s.rentalRepo.CountProceedingByMember(ctx, rental.MemberID)
	if err != nil {
		return nil, fmt.Errorf("count rentals: %w", err)
	}

	err = s.rentalRepo.Return(ctx, rental, s.statusFor(held-1))
	if errors.Is(err, repository.ErrStateChanged) {
		return nil, fmt.Errorf("%s: %w", what, ErrAlreadyReturned)
	}
	if err != nil {
		return nil, err
	}
	return dto.FromRental(rental), nil
}

func (s *rentalService) statusFor(held int64) models.MemberRentalStatus {
	if held >= s.maxRentals {
		return models.RentalUnavailable
	}
	return models.RentalAvailable
}
