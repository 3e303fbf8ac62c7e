package handler

import (
	"context"
	"net/http"

	"librarymgmt/internal/http-api/dto"
	"librarymgmt/internal/http-api/middleware"
	"librarymgmt/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type RentalHandler struct {
	rentals service.RentalService
}

func NewRentalHandler(rentals service.RentalService) *RentalHandler {
	return &RentalHandler{rentals: rentals}
}

// RegisterRoutes mounts lending under rg (/rentals). Librarians record rentals, so every route is admin-only.
func (h *RentalHandler) RegisterRoutes(rg *gin.RouterGroup, authn gin.HandlerFunc) {
	rg.Use(authn, middleware.RequireAdmin())

	rg.POST("", h.Rent)
	rg.POST("/:rentalId/return", h.Return)
}

func (h *RentalHandler) Rent(c *gin.Context) {
	var req dto.RentalCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	rental, err := h.rentals.RentBook(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rental)
}

func (h *RentalHandler) Return(c *gin.Context) {
	id, ok := pathID(c, "rentalId")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	rental, err := h.rentals.ReturnBook(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rental)
}
