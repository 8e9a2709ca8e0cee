package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cooknest/backend/internal/middleware"
	"github.com/cooknest/backend/internal/service"
	"github.com/cooknest/backend/internal/types"
)

type LikeRecipeRequest struct {
	RecipeID uuid.UUID `json:"recipe_id" binding:"required"`
}

// LikeHandler serves the like relation. Every route is user-only and
// scoped to the caller's own id taken from claims, never from the path.
type LikeHandler struct {
	likeService *service.LikeService
	authService *service.AuthService
}

func NewLikeHandler(likeService *service.LikeService, authService *service.AuthService) *LikeHandler {
	return &LikeHandler{
		likeService: likeService,
		authService: authService,
	}
}

func (h *LikeHandler) RegisterRoutes(router *gin.RouterGroup) {
	likes := router.Group("/likes")
	likes.Use(middleware.AuthMiddleware(h.authService), middleware.RequireRole(types.RoleUser))
	{
		likes.POST("", h.LikeRecipe)
		likes.DELETE("/:recipe_id", h.UnlikeRecipe)
		likes.GET("", h.GetLikedRecipes)
	}
}

func (h *LikeHandler) LikeRecipe(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)

	var req LikeRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.likeService.LikeRecipe(claims.ID, req.RecipeID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		case errors.Is(err, service.ErrAlreadyLiked):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Recipe already liked"})
		default:
			log.Printf("[LikeHandler] like failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like recipe"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Recipe liked successfully"})
}

// UnlikeRecipe is idempotent: removing a like that does not exist succeeds.
func (h *LikeHandler) UnlikeRecipe(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)

	recipeID, err := uuid.Parse(c.Param("recipe_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := h.likeService.UnlikeRecipe(claims.ID, recipeID); err != nil {
		log.Printf("[LikeHandler] unlike failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlike recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe unliked successfully"})
}

func (h *LikeHandler) GetLikedRecipes(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)

	recipes, err := h.likeService.GetLikedRecipes(claims.ID)
	if err != nil {
		log.Printf("[LikeHandler] liked list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch liked recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}
