package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cooknest/backend/internal/types"
)

// ClaimsKey is the single context key every protected handler reads
// verified claims from, regardless of the caller's role.
const ClaimsKey = "claims"

// TokenValidator is an interface for validating JWT tokens
type TokenValidator interface {
	ValidateToken(token string) (*types.TokenClaims, error)
}

// AuthMiddleware creates a middleware that validates JWT tokens and stores
// the verified claims in the request context.
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no token provided"})
			c.Abort()
			return
		}

		// The Bearer prefix is conventional but optional.
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		claims, err := validator.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		if !claims.Role.Valid() {
			c.JSON(http.StatusForbidden, gin.H{"error": "unauthorized role"})
			c.Abort()
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireRole rejects callers whose verified role differs from the one the
// route is scoped to. It must run after AuthMiddleware.
func RequireRole(role types.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok || claims.Role != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetClaims returns the verified claims stored by AuthMiddleware.
func GetClaims(c *gin.Context) (*types.TokenClaims, bool) {
	value, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*types.TokenClaims)
	return claims, ok
}
