package dto

import "librarymgmt/internal/http-api/models"

type AdminCreateRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=4"`
}

type AdminResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func FromAdministrator(admin *models.Administrator) *AdminResponse {
	return &AdminResponse{
		ID:    admin.ID,
		Name:  admin.Name,
		Email: admin.Email,
	}
}
