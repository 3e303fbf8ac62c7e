package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"librarymgmt/internal/http-api/models"

	"gorm.io/gorm"
)

// ErrStateChanged means a conditional update matched no row because another
// request changed the row first.
var ErrStateChanged = errors.New("row state changed concurrently")

type RentalRepository interface {
	Lend(ctx context.Context, memberID, bookID int64, memberStatus models.MemberRentalStatus) (*models.Rental, error)
	Return(ctx context.Context, rental *models.Rental, memberStatus models.MemberRentalStatus) error
	FindByID(ctx context.Context, id int64) (*models.Rental, error)
	CountProceedingByMember(ctx context.Context, memberID int64) (int64, error)
}

type rentalRepository struct {
	db *gorm.DB
}

func NewRentalRepository(db *gorm.DB) RentalRepository {
	return &rentalRepository{db: db}
}

// Lend marks the book as rented, records the rental and stores the member's new
// rental status in one transaction.
func (r *rentalRepository) Lend(ctx context.Context, memberID, bookID int64, memberStatus models.MemberRentalStatus) (*models.Rental, error) {
	rental := &models.Rental{
		MemberID: memberID,
		BookID:   bookID,
		Status:   models.RentalProceeding,
		RentedAt: time.Now().UTC(),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Book{}).
			Where("id = ? AND status = ?", bookID, models.BookAvailable).
			Update("status", models.BookRental)
		if result.Error != nil {
			return fmt.Errorf("mark book rented: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrStateChanged
		}

		if err := tx.Create(rental).Error; err != nil {
			return fmt.Errorf("create rental: %w", err)
		}

		if err := tx.Model(&models.Member{}).
			Where("id = ?", memberID).
			Update("rental_status", memberStatus).Error; err != nil {
			return fmt.Errorf("update member rental status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rental, nil
}

// Return closes the rental, puts the book back on the shelf and stores the
// member's new rental status in one transaction.
func (r *rentalRepository) Return(ctx context.Context, rental *models.Rental, memberStatus models.MemberRentalStatus) error {
	now := time.Now().UTC()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Rental{}).
			Where("id = ? AND status = ?", rental.ID, models.RentalProceeding).
			Updates(map[string]any{"status": models.RentalReturned, "returned_at": now})
		if result.Error != nil {
			return fmt.Errorf("close rental: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrStateChanged
		}

		if err := tx.Model(&models.Book{}).
			Where("id = ?", rental.BookID).
			Update("status", models.BookAvailable).Error; err != nil {
			return fmt.Errorf("mark book available: %w", err)
		}

		if err := tx.Model(&models.Member{}).
			Where("id = ?", rental.MemberID).
			Update("rental_status", memberStatus).Error; err != nil {
			return fmt.Errorf("update member rental status: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	rental.Status = models.RentalReturned
	rental.ReturnedAt = &now
	return nil
}

func (r *rentalRepository) FindByID(ctx context.Context, id int64) (*models.Rental, error) {
	var rental models.Rental
	if err := r.db.WithContext(ctx).First(&rental, id).Error; err != nil {
		return nil, err
	}
	return &rental, nil
}

func (r *rentalRepository) CountProceedingByMember(ctx context.Context, memberID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Rental{}).
		Where("member_id = ? AND status = ?", memberID, models.RentalProceeding).
		Count(&count).Error
	return count, err
}
