package handler

import (
	"context"
	"net/http"

	"librarymgmt/internal/http-api/dto"
	"librarymgmt/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	admins  service.AdminService
	members service.MemberService
}

func NewAuthHandler(admins service.AdminService, members service.MemberService) *AuthHandler {
	return &AuthHandler{admins: admins, members: members}
}

// RegisterRoutes mounts the login endpoints under rg (/auth).
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/admins/login", h.AdminLogin)
	rg.POST("/members/login", h.MemberLogin)
}

func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	pair, err := h.admins.Login(ctx, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tokenResponse(pair))
}

func (h *AuthHandler) MemberLogin(c *gin.Context) {
	var req dto.MemberLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	pair, err := h.members.Login(ctx, req.MemberCode, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tokenResponse(pair))
}

func tokenResponse(pair *service.TokenPair) dto.TokenResponse {
	return dto.TokenResponse{
		AccessToken: pair.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   pair.ExpiresIn,
	}
}
