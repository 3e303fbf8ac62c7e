package handler

import (
	"context"
	"net/http"

	"librarymgmt/internal/http-api/dto"
	"librarymgmt/internal/http-api/middleware"
	"librarymgmt/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	members service.MemberService
}

func NewMemberHandler(members service.MemberService) *MemberHandler {
	return &MemberHandler{members: members}
}

// RegisterRoutes mounts member management under rg (/members). Every route is admin-only.
func (h *MemberHandler) RegisterRoutes(rg *gin.RouterGroup, authn gin.HandlerFunc) {
	rg.Use(authn, middleware.RequireAdmin())

	rg.POST("", h.Register)
	rg.GET("", h.ListByStatus)
	rg.GET("/search", h.Search)
	rg.GET("/:memberCode", h.Get)
}

func (h *MemberHandler) Register(c *gin.Context) {
	var req dto.MemberCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	member, err := h.members.Register(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (h *MemberHandler) ListByStatus(c *gin.Context) {
	var q dto.MemberStatusQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	page, size := q.Resolve()
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	members, err := h.members.ListByRentalStatus(ctx, q.Status, page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *MemberHandler) Search(c *gin.Context) {
	var q dto.MemberSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	member, err := h.members.FindByNameAndAddress(ctx, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	member, err := h.members.GetByMemberCode(ctx, c.Param("memberCode"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}
