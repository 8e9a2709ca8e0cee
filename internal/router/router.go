package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cooknest/backend/internal/api"
	"github.com/cooknest/backend/internal/database"
	"github.com/cooknest/backend/internal/middleware"
	"github.com/cooknest/backend/internal/service"
)

// Deps are the shared collaborators the route table is built from.
// RateLimiter and Images may be nil; their routes degrade gracefully.
type Deps struct {
	DB          *gorm.DB
	Auth        *service.AuthService
	Accounts    *service.AccountService
	Recipes     *service.RecipeService
	Likes       *service.LikeService
	Images      *service.ImageService
	RateLimiter *middleware.RateLimiter
	Origins     []string
}

// SetupRouter configures the application routes
func SetupRouter(deps Deps) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORS(deps.Origins))

	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := database.HealthCheck(ctx, deps.DB); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "degraded", "error": "database unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api.NewAuthHandler(deps.Auth).RegisterRoutes(v1, deps.RateLimiter)
	api.NewUserHandler(deps.Accounts, deps.Auth).RegisterRoutes(v1)
	api.NewChefHandler(deps.Accounts, deps.Likes, deps.Auth).RegisterRoutes(v1)
	api.NewRecipeHandler(deps.Recipes, deps.Auth).RegisterRoutes(v1)
	api.NewLikeHandler(deps.Likes, deps.Auth).RegisterRoutes(v1)
	if deps.Images != nil {
		api.NewImageHandler(deps.Images, deps.Auth).RegisterRoutes(v1)
	}

	return router
}
