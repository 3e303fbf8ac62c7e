// Package httpapi assembles the library REST API.
package httpapi

import (
	"log/slog"

	"librarymgmt/internal/cache"
	"librarymgmt/internal/config"
	"librarymgmt/internal/http-api/handler"
	"librarymgmt/internal/http-api/middleware"
	"librarymgmt/internal/http-api/repository"
	"librarymgmt/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Services are the use cases the router exposes.
type Services struct {
	Admins    service.AdminService
	Members   service.MemberService
	Books     service.BookService
	Reviews   service.BookReviewService
	Recommend service.BookRecommendService
	Rentals   service.RentalService
	Requests  service.NewBookRequestService
}

// NewServices wires repositories over db into the services. A nil cache disables caching.
func NewServices(db *gorm.DB, cfg *config.Config, c cache.Cache, tokens *service.TokenManager, logger *slog.Logger) Services {
	adminRepo := repository.NewAdminRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	bookRepo := repository.NewBookRepository(db)

	return Services{
		Admins:  service.NewAdminService(adminRepo, tokens),
		Members: service.NewMemberService(memberRepo, tokens),
		Books:   service.NewBookService(bookRepo),
		Reviews: service.NewBookReviewService(repository.NewBookReviewRepository(db), bookRepo, memberRepo),
		Recommend: service.NewBookRecommendService(
			repository.NewBookRecommendRepository(db),
			c,
			cfg.RecommendLimit,
			cfg.CacheExpiry(),
			logger,
		),
		Rentals: service.NewRentalService(repository.NewRentalRepository(db), memberRepo, bookRepo, cfg.MaxRentalsPerMember),
		Requests: service.NewNewBookRequestService(
			repository.NewNewBookRequestRepository(db),
			repository.NewNewBookRequestResultRepository(db),
			memberRepo,
			adminRepo,
		),
	}
}

// NewRouter builds the gin engine with the shared middleware chain and every route.
func NewRouter(cfg *config.Config, logger *slog.Logger, svc Services, tokens middleware.TokenValidator, db handler.Pinger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORSOrigins),
		middleware.RateLimit(middleware.NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)),
	)

	authn := middleware.AuthMiddleware(tokens)
	root := r.Group("")

	handler.NewHealthHandler(db).RegisterRoutes(root)
	handler.NewAuthHandler(svc.Admins, svc.Members).RegisterRoutes(r.Group("/auth"))
	handler.NewAdminHandler(svc.Admins).RegisterRoutes(r.Group("/admins"), authn)
	handler.NewMemberHandler(svc.Members).RegisterRoutes(r.Group("/members"), authn)
	handler.NewBookHandler(svc.Books, svc.Reviews, svc.Recommend).RegisterRoutes(r.Group("/books"), authn)
	handler.NewRentalHandler(svc.Rentals).RegisterRoutes(r.Group("/rentals"), authn)
	handler.NewNewBookRequestHandler(svc.Requests).RegisterRoutes(root, authn)

	return r
}
