package dto

import (
	"time"

	"librarymgmt/internal/http-api/models"
)

type NewBookRequestCreateRequest struct {
	RequestBookTitle string `json:"requestBookTitle" binding:"required,max=200"`
	RequestContent   string `json:"requestContent" binding:"required"`
}

// NewBookRequestQuery filters the request listing; empty status lists all.
type NewBookRequestQuery struct {
	PageQuery
	Status models.RequestStatus `form:"status" binding:"omitempty,oneof=WAITING ACCEPTED REJECTED"`
}

type NewBookRequestResponse struct {
	ID               int64                `json:"id"`
	MemberName       string               `json:"memberName"`
	MemberCode       string               `json:"memberCode"`
	RequestBookTitle string               `json:"requestBookTitle"`
	RequestContent   string               `json:"requestContent"`
	RequestStatus    models.RequestStatus `json:"requestStatus"`
	CreatedAt        time.Time            `json:"createdAt"`
}

// RequestResultCreateRequest is an administrator's answer to a request.
type RequestResultCreateRequest struct {
	ResultStatus      models.RequestStatus `json:"resultStatus" binding:"required,oneof=ACCEPTED REJECTED"`
	ResultPostContent string               `json:"resultPostContent"`
}

type RequestResultResponse struct {
	ID                int64                `json:"id"`
	RequestID         int64                `json:"requestId"`
	RequestBookTitle  string               `json:"requestBookTitle"`
	AdminName         string               `json:"adminName"`
	AdminEmail        string               `json:"adminEmail"`
	ResultStatus      models.RequestStatus `json:"resultStatus"`
	ResultPostContent string               `json:"resultPostContent"`
	CreatedAt         time.Time            `json:"createdAt"`
}

func FromNewBookRequest(r *models.NewBookRequest) NewBookRequestResponse {
	out := NewBookRequestResponse{
		ID:               r.ID,
		RequestBookTitle: r.RequestBookTitle,
		RequestContent:   r.RequestContent,
		RequestStatus:    r.RequestStatus,
		CreatedAt:        r.CreatedAt,
	}
	if r.Member != nil {
		out.MemberName = r.Member.Name
		out.MemberCode = r.Member.MemberCode
	}
	return out
}

func FromRequestResult(r *models.NewBookRequestResult) RequestResultResponse {
	out := RequestResultResponse{
		ID:                r.ID,
		RequestID:         r.NewBookRequestID,
		ResultStatus:      r.ResultStatus,
		ResultPostContent: r.ResultPostContent,
		CreatedAt:         r.CreatedAt,
	}
	if r.NewBookRequest != nil {
		out.RequestBookTitle = r.NewBookRequest.RequestBookTitle
	}
	if r.Administrator != nil {
		out.AdminName = r.Administrator.Name
		out.AdminEmail = r.Administrator.Email
	}
	return out
}
