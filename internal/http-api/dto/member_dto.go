package dto

import "librarymgmt/internal/http-api/models"

type AddressDTO struct {
	Legion string `json:"legion" binding:"required"`
	City   string `json:"city" binding:"required"`
	Street string `json:"street" binding:"required"`
}

// MemberCreateRequest registers a member; the member code is generated.
type MemberCreateRequest struct {
	Name         string     `json:"name" binding:"required"`
	BirthdayCode string     `json:"birthdayCode" binding:"required,len=6,numeric"`
	Address      AddressDTO `json:"address"`
	Password     string     `json:"password" binding:"required,min=4"`
}

// MemberStatusQuery filters the member listing by rental status.
type MemberStatusQuery struct {
	PageQuery
	Status models.MemberRentalStatus `form:"status" binding:"required,oneof=RENTAL_AVAILABLE RENTAL_UNAVAILABLE"`
}

// MemberSearchQuery looks a member up by name and full address.
type MemberSearchQuery struct {
	Name   string `form:"name" binding:"required"`
	Legion string `form:"legion" binding:"required"`
	City   string `form:"city" binding:"required"`
	Street string `form:"street" binding:"required"`
}

type MemberResponse struct {
	ID                 int64                     `json:"id"`
	Name               string                    `json:"name"`
	MemberCode         string                    `json:"memberCode"`
	BirthdayCode       string                    `json:"birthdayCode"`
	Address            AddressDTO                `json:"address"`
	MemberRentalStatus models.MemberRentalStatus `json:"memberRentalStatus"`
}

func FromMember(m *models.Member) MemberResponse {
	return MemberResponse{
		ID:           m.ID,
		Name:         m.Name,
		MemberCode:   m.MemberCode,
		BirthdayCode: m.BirthdayCode,
		Address: AddressDTO{
			Legion: m.Address.Legion,
			City:   m.Address.City,
			Street: m.Address.Street,
		},
		MemberRentalStatus: m.RentalStatus,
	}
}
