package dto

import (
	"time"

	"librarymgmt/internal/http-api/models"
)

type RentalCreateRequest struct {
	MemberCode string `json:"memberCode" binding:"required"`
	BookID     int64  `json:"bookId" binding:"required,min=1"`
}

type RentalResponse struct {
	ID           int64               `json:"id"`
	MemberID     int64               `json:"memberId"`
	BookID       int64               `json:"bookId"`
	RentalStatus models.RentalStatus `json:"rentalStatus"`
	RentedAt     time.Time           `json:"rentedAt"`
	ReturnedAt   *time.Time          `json:"returnedAt,omitempty"`
}

func FromRental(r *models.Rental) *RentalResponse {
	return &RentalResponse{
		ID:           r.ID,
		MemberID:     r.MemberID,
		BookID:       r.BookID,
		RentalStatus: r.Status,
		RentedAt:     r.RentedAt,
		ReturnedAt:   r.ReturnedAt,
	}
}
