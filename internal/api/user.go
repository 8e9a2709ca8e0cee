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

type UpdateUserRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=3,max=50"`
	Email        *string `json:"email" binding:"omitempty,email"`
	ProfileImage *string `json:"profile_image" binding:"omitempty,url"`
}

type UpdateUserProfileRequest struct {
	ProfileImage string `json:"profile_image" binding:"required,url"`
}

// UserHandler serves user account reads and self-scoped mutations.
type UserHandler struct {
	accountService *service.AccountService
	authService    *service.AuthService
}

func NewUserHandler(accountService *service.AccountService, authService *service.AuthService) *UserHandler {
	return &UserHandler{
		accountService: accountService,
		authService:    authService,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	users.Use(middleware.AuthMiddleware(h.authService))
	{
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
		users.PUT("/:id", h.UpdateUser)
		users.PUT("/:id/profile", h.UpdateUserProfile)
		users.DELETE("/:id", h.DeleteUser)
	}
}

// requireSelf enforces that the caller is a user acting on their own id.
func requireSelfUser(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return uuid.Nil, false
	}

	claims, ok := middleware.GetClaims(c)
	if !ok || claims.Role != types.RoleUser || claims.ID != id {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.accountService.ListUsers()
	if err != nil {
		log.Printf("[UserHandler] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := requireSelfUser(c)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccount(id, models.AccountKindUser)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}
	c.JSON(http.StatusOK, account.AsUser())
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := requireSelfUser(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.accountService.UpdateAccount(id, models.AccountKindUser, service.AccountUpdate{
		Name:         req.Name,
		Email:        req.Email,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already in use"})
		default:
			log.Printf("[UserHandler] update failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    account.AsUser(),
	})
}

func (h *UserHandler) UpdateUserProfile(c *gin.Context) {
	id, ok := requireSelfUser(c)
	if !ok {
		return
	}

	var req UpdateUserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.accountService.UpdateAccount(id, models.AccountKindUser, service.AccountUpdate{
		ProfileImage: &req.ProfileImage,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User profile updated",
		"user":    account.AsUser(),
	})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := requireSelfUser(c)
	if !ok {
		return
	}

	if err := h.accountService.DeleteAccount(id, models.AccountKindUser); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("[UserHandler] delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
