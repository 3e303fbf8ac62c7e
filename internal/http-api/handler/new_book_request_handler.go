package handler

import (
	"context"
	"net/http"

	"librarymgmt/internal/http-api/dto"
	"librarymgmt/internal/http-api/middleware"
	"librarymgmt/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type NewBookRequestHandler struct {
	requests service.NewBookRequestService
}

func NewNewBookRequestHandler(requests service.NewBookRequestService) *NewBookRequestHandler {
	return &NewBookRequestHandler{requests: requests}
}

// RegisterRoutes mounts /new-book-requests and /admins/me/request-results under root.
func (h *NewBookRequestHandler) RegisterRoutes(root *gin.RouterGroup, authn gin.HandlerFunc) {
	requests := root.Group("/new-book-requests", authn)

	// Member-only routes
	requests.POST("", middleware.RequireMember(), h.Create)

	// Admin-only routes
	requests.GET("", middleware.RequireAdmin(), h.List)
	requests.GET("/:requestId", middleware.RequireAdmin(), h.Get)
	requests.POST("/:requestId/result", middleware.RequireAdmin(), h.Resolve)
	requests.GET("/:requestId/result", middleware.RequireAdmin(), h.GetResult)

	root.GET("/admins/me/request-results", authn, middleware.RequireAdmin(), h.MyResults)
}

func (h *NewBookRequestHandler) Create(c *gin.Context) {
	var req dto.NewBookRequestCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	request, err := h.requests.CreateRequest(ctx, middleware.Subject(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

func (h *NewBookRequestHandler) List(c *gin.Context) {
	var q dto.NewBookRequestQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	page, size := q.Resolve()
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	requests, err := h.requests.ListRequests(ctx, q.Status, page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *NewBookRequestHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "requestId")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	request, err := h.requests.GetRequest(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func (h *NewBookRequestHandler) Resolve(c *gin.Context) {
	id, ok := pathID(c, "requestId")
	if !ok {
		return
	}
	var req dto.RequestResultCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	result, err := h.requests.ResolveRequest(ctx, middleware.Subject(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *NewBookRequestHandler) GetResult(c *gin.Context) {
	id, ok := pathID(c, "requestId")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	result, err := h.requests.GetResultByRequestID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *NewBookRequestHandler) MyResults(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	page, size := q.Resolve()
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	results, err := h.requests.ListResultsByAdmin(ctx, middleware.Subject(c), page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
