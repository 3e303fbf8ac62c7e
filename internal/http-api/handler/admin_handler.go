package handler

import (
	"context"
	"net/http"

	"librarymgmt/internal/http-api/dto"
	"librarymgmt/internal/http-api/middleware"
	"librarymgmt/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	admins service.AdminService
}

func NewAdminHandler(admins service.AdminService) *AdminHandler {
	return &AdminHandler{admins: admins}
}

// RegisterRoutes mounts administrator management under rg (/admins).
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup, authn gin.HandlerFunc) {
	rg.POST("", authn, middleware.RequireAdmin(), h.Create)
}

func (h *AdminHandler) Create(c *gin.Context) {
	var req dto.AdminCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	admin, err := h.admins.CreateAdmin(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, admin)
}
