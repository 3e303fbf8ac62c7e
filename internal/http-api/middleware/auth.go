package middleware

import (
	"net/http"
	"strings"

	"librarymgmt/internal/http-api/models"
	"librarymgmt/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

const (
	claimsKey  = "claims"
	subjectKey = "subject"
	roleKey    = "role"
)

// TokenValidator is satisfied by *service.TokenManager.
type TokenValidator interface {
	Validate(tokenString string) (*service.Claims, error)
}

// AuthMiddleware is a Gin middleware for JWT authentication of API requests
// It checks for the presence and validity of a JWT token in the Authorization header
func AuthMiddleware(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		// Extract token (format: "Bearer <token>")
		scheme, tokenString, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// Set identity in context for handlers to use
		c.Set(claimsKey, claims)
		c.Set(subjectKey, claims.Subject)
		c.Set(roleKey, claims.Role)

		c.Next()
	}
}

// RequireRole checks if the caller has the specified role. It must run after AuthMiddleware.
func RequireRole(required models.Authority) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(roleKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "role not found in token"})
			return
		}

		if current, ok := role.(models.Authority); !ok || current != required {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "insufficient permissions",
				"required": required,
			})
			return
		}

		c.Next()
	}
}

// RequireAdmin is a convenience function for requiring the administrator role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

// RequireMember is a convenience function for requiring the member role
func RequireMember() gin.HandlerFunc {
	return RequireRole(models.RoleMember)
}

// Subject returns the authenticated admin email or member code.
func Subject(c *gin.Context) string {
	return c.GetString(subjectKey)
}
