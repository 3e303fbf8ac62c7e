package models

import "time"

// Address is embedded into the members table as address_* columns.
type Address struct {
	Legion string `json:"legion" gorm:"not null"`
	City   string `json:"city" gorm:"not null"`
	Street string `json:"street" gorm:"not null"`
}

type Member struct {
	ID           int64              `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string             `json:"name" gorm:"not null;index"`
	MemberCode   string             `json:"memberCode" gorm:"uniqueIndex;not null;size:20"`
	BirthdayCode string             `json:"birthdayCode" gorm:"not null;size:6"`
	Address      Address            `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	Password     string             `json:"-" gorm:"column:password_hash;not null"`
	RentalStatus MemberRentalStatus `json:"memberRentalStatus" gorm:"not null;index;size:30"`
	Authority    Authority          `json:"authority" gorm:"not null;size:20"`
	CreatedAt    time.Time          `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time          `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Member) TableName() string {
	return "members"
}
