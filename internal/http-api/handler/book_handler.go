package handler

import (
	"context"
	"net/http"

	"librarymgmt/internal/http-api/dto"
	"librarymgmt/internal/http-api/middleware"
	"librarymgmt/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	books     service.BookService
	reviews   service.BookReviewService
	recommend service.BookRecommendService
}

func NewBookHandler(books service.BookService, reviews service.BookReviewService, recommend service.BookRecommendService) *BookHandler {
	return &BookHandler{books: books, reviews: reviews, recommend: recommend}
}

// RegisterRoutes mounts the catalog under rg (/books). authn validates bearer tokens.
func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup, authn gin.HandlerFunc) {
	// Public routes
	rg.GET("", h.List)
	rg.GET("/:bookId", h.Get)
	rg.GET("/:bookId/reviews", h.ListReviews)
	rg.GET("/:bookId/reviews/:bookReviewId", h.GetReview)
	rg.GET("/recommend-books/rented-count", h.RecommendByRentedCount)
	rg.GET("/recommend-books/book-review-rate", h.RecommendByReviewRate)

	// Member-only routes
	rg.POST("/:bookId/reviews", authn, middleware.RequireMember(), h.CreateReview)

	// Admin-only routes
	rg.POST("", authn, middleware.RequireAdmin(), h.Create)
	rg.PUT("/:bookId", authn, middleware.RequireAdmin(), h.Update)
	rg.DELETE("/:bookId", authn, middleware.RequireAdmin(), h.Delete)
}

func (h *BookHandler) List(c *gin.Context) {
	var q dto.BookSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	page, err := h.books.SearchBook(ctx, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *BookHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "bookId")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	book, err := h.books.GetBookData(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

func (h *BookHandler) Create(c *gin.Context) {
	var in dto.BookRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	book, err := h.books.CreateBook(ctx, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, book)
}

func (h *BookHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "bookId")
	if !ok {
		return
	}
	var in dto.BookRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	book, err := h.books.UpdateBook(ctx, id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "bookId")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.books.DeleteBook(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookHandler) ListReviews(c *gin.Context) {
	id, ok := pathID(c, "bookId")
	if !ok {
		return
	}
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	page, size := q.Resolve()
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	reviews, err := h.reviews.GetBookReviewList(ctx, id, page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *BookHandler) GetReview(c *gin.Context) {
	bookID, ok := pathID(c, "bookId")
	if !ok {
		return
	}
	reviewID, ok := pathID(c, "bookReviewId")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	review, err := h.reviews.GetReviewData(ctx, bookID, reviewID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *BookHandler) CreateReview(c *gin.Context) {
	bookID, ok := pathID(c, "bookId")
	if !ok {
		return
	}
	var in dto.ReviewCreateRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	review, err := h.reviews.CreateReview(ctx, middleware.Subject(c), bookID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *BookHandler) RecommendByRentedCount(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	books, err := h.recommend.GetRecommendBookListByRentalCount(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewArrayResponse(books))
}

func (h *BookHandler) RecommendByReviewRate(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	books, err := h.recommend.GetRecommendBookListByReviewRate(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewArrayResponse(books))
}
