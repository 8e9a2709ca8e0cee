package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cooknest/backend/internal/middleware"
	"github.com/cooknest/backend/internal/models"
	"github.com/cooknest/backend/internal/service"
	"github.com/cooknest/backend/internal/types"
)

type UpdateChefRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=3,max=50"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Bio          *string `json:"bio" binding:"omitempty,max=500"`
	ProfileImage *string `json:"profile_image" binding:"omitempty,url"`
	CoverImage   *string `json:"cover_image" binding:"omitempty,url"`
}

type UpdateChefProfileRequest struct {
	ProfileImage *string `json:"profile_image" binding:"omitempty,url"`
	CoverImage   *string `json:"cover_image" binding:"omitempty,url"`
}

// ChefHandler serves chef reads (public), stats and self-scoped mutations.
type ChefHandler struct {
	accountService *service.AccountService
	likeService    *service.LikeService
	authService    *service.AuthService
}

func NewChefHandler(accountService *service.AccountService, likeService *service.LikeService, authService *service.AuthService) *ChefHandler {
	return &ChefHandler{
		accountService: accountService,
		likeService:    likeService,
		authService:    authService,
	}
}

func (h *ChefHandler) RegisterRoutes(router *gin.RouterGroup) {
	chefs := router.Group("/chefs")
	{
		chefs.GET("", h.ListChefs)
		chefs.GET("/:id", h.GetChef)
		chefs.GET("/:id/stats", middleware.AuthMiddleware(h.authService), h.GetChefStats)
		chefs.PUT("/:id", middleware.AuthMiddleware(h.authService), h.UpdateChef)
		chefs.PUT("/:id/profile", middleware.AuthMiddleware(h.authService), h.UpdateChefProfile)
		chefs.DELETE("/:id", middleware.AuthMiddleware(h.authService), h.DeleteChef)
	}
}

func requireSelfChef(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chef id"})
		return uuid.Nil, false
	}

	claims, ok := middleware.GetClaims(c)
	if !ok || claims.Role != types.RoleChef || claims.ID != id {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *ChefHandler) ListChefs(c *gin.Context) {
	chefs, err := h.accountService.ListChefs()
	if err != nil {
		log.Printf("[ChefHandler] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chefs"})
		return
	}
	c.JSON(http.StatusOK, chefs)
}

func (h *ChefHandler) GetChef(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chef id"})
		return
	}

	chef, recipes, err := h.accountService.GetChefWithRecipes(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chef not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chef"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"chef":    chef,
		"recipes": recipes,
	})
}

func (h *ChefHandler) GetChefStats(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chef id"})
		return
	}

	stats, err := h.likeService.GetChefStats(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chef not found"})
			return
		}
		log.Printf("[ChefHandler] stats failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *ChefHandler) UpdateChef(c *gin.Context) {
	id, ok := requireSelfChef(c)
	if !ok {
		return
	}

	var req UpdateChefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.accountService.UpdateAccount(id, models.AccountKindChef, service.AccountUpdate{
		Name:         req.Name,
		Email:        req.Email,
		Bio:          req.Bio,
		ProfileImage: req.ProfileImage,
		CoverImage:   req.CoverImage,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Chef not found"})
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already in use"})
		default:
			log.Printf("[ChefHandler] update failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update chef"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Chef profile updated successfully",
		"chef":    account.AsChef(),
	})
}

func (h *ChefHandler) UpdateChefProfile(c *gin.Context) {
	id, ok := requireSelfChef(c)
	if !ok {
		return
	}

	var req UpdateChefProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.accountService.UpdateAccount(id, models.AccountKindChef, service.AccountUpdate{
		ProfileImage: req.ProfileImage,
		CoverImage:   req.CoverImage,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chef not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated",
		"chef":    account.AsChef(),
	})
}

// DeleteChef removes the chef together with their recipes and those
// recipes' likes.
func (h *ChefHandler) DeleteChef(c *gin.Context) {
	id, ok := requireSelfChef(c)
	if !ok {
		return
	}

	if err := h.accountService.DeleteAccount(id, models.AccountKindChef); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chef not found"})
			return
		}
		log.Printf("[ChefHandler] delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete chef"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Chef profile deleted successfully"})
}
