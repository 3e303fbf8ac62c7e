package models

import "time"

type Rental struct {
	ID         int64        `json:"id" gorm:"primaryKey;autoIncrement"`
	MemberID   int64        `json:"memberId" gorm:"not null;index"`
	BookID     int64        `json:"bookId" gorm:"not null;index"`
	Status     RentalStatus `json:"rentalStatus" gorm:"not null;index;size:20"`
	RentedAt   time.Time    `json:"rentedAt" gorm:"not null"`
	ReturnedAt *time.Time   `json:"returnedAt,omitempty"`

	// Associations
	Member *Member `json:"member,omitempty" gorm:"foreignKey:MemberID"`
	Book   *Book   `json:"book,omitempty" gorm:"foreignKey:BookID"`
}

func (Rental) TableName() string {
	return "rentals"
}
