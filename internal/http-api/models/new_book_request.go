package models

import "time"

// NewBookRequest is a member's suggestion for a book the library should acquire.
type NewBookRequest struct {
	ID               int64         `json:"id" gorm:"primaryKey;autoIncrement"`
	MemberID         int64         `json:"memberId" gorm:"not null;index"`
	RequestBookTitle string        `json:"requestBookTitle" gorm:"not null"`
	RequestContent   string        `json:"requestContent" gorm:"not null;type:text"`
	RequestStatus    RequestStatus `json:"requestStatus" gorm:"not null;index;size:20"`
	CreatedAt        time.Time     `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt        time.Time     `json:"updatedAt" gorm:"autoUpdateTime"`

	// Associations
	Member *Member `json:"member,omitempty" gorm:"foreignKey:MemberID"`
}

func (NewBookRequest) TableName() string {
	return "new_book_requests"
}

// NewBookRequestResult is the administrator's answer to a request (1:1 by request id).
type NewBookRequestResult struct {
	ID                int64         `json:"id" gorm:"primaryKey;autoIncrement"`
	NewBookRequestID  int64         `json:"newBookRequestId" gorm:"uniqueIndex;not null"`
	AdministratorID   int64         `json:"administratorId" gorm:"not null;index"`
	ResultStatus      RequestStatus `json:"resultStatus" gorm:"not null;size:20"`
	ResultPostContent string        `json:"resultPostContent" gorm:"type:text"`
	CreatedAt         time.Time     `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt         time.Time     `json:"updatedAt" gorm:"autoUpdateTime"`

	// Associations
	NewBookRequest *NewBookRequest `json:"newBookRequest,omitempty" gorm:"foreignKey:NewBookRequestID;constraint:OnDelete:CASCADE;"`
	Administrator  *Administrator  `json:"administrator,omitempty" gorm:"foreignKey:AdministratorID"`
}

func (NewBookRequestResult) TableName() string {
	return "new_book_request_results"
}
