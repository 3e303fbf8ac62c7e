package models

import "time"

type Book struct {
	ID            int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title         string     `json:"title" gorm:"not null;index"`
	Author        string     `json:"author" gorm:"not null;index"`
	Publisher     string     `json:"publisher" gorm:"not null"`
	PublishedYear int        `json:"publishedYear" gorm:"not null"`
	Location      string     `json:"location" gorm:"not null"`
	TypeCode      int        `json:"typeCode" gorm:"not null;check:type_code >= 1 AND type_code <= 999"`
	Status        BookStatus `json:"status" gorm:"not null;index;size:20"`
	CreatedAt     time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Book) TableName() string {
	return "books"
}
