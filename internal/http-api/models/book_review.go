package models

import "time"

type BookReview struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	BookID        int64     `json:"bookId" gorm:"not null;index"`
	MemberID      int64     `json:"memberId" gorm:"not null;index"`
	ReviewTitle   string    `json:"reviewTitle" gorm:"not null"`
	ReviewContent string    `json:"reviewContent" gorm:"not null;type:text"`
	ReviewRate    int       `json:"reviewRate" gorm:"not null;check:review_rate >= 1 AND review_rate <= 5"`
	CreatedAt     time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updatedAt" gorm:"autoUpdateTime"`

	// Associations
	Book   *Book   `json:"book,omitempty" gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE;"`
	Member *Member `json:"member,omitempty" gorm:"foreignKey:MemberID"`
}

func (BookReview) TableName() string {
	return "book_reviews"
}
