package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cooknest/backend/internal/middleware"
	"github.com/cooknest/backend/internal/service"
)

type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type RegisterChefRequest struct {
	Name         string `json:"name" binding:"required,min=3,max=50"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	Bio          string `json:"bio" binding:"max=500"`
	ProfileImage string `json:"profile_image" binding:"omitempty,url"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthHandler serves registration and login for both principal kinds.
type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, rateLimiter *middleware.RateLimiter) {
	auth := router.Group("/auth")
	if rateLimiter != nil {
		auth.Use(rateLimiter.Middleware())
	}
	{
		auth.POST("/register/user", h.RegisterUser)
		auth.POST("/register/chef", h.RegisterChef)
		auth.POST("/login", h.Login)
	}
}

func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, token, err := h.authService.RegisterUser(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already in use"})
			return
		}
		log.Printf("[AuthHandler] user registration failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    account.AsUser(),
		"token":   token,
	})
}

func (h *AuthHandler) RegisterChef(c *gin.Context) {
	var req RegisterChefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, token, err := h.authService.RegisterChef(req.Name, req.Email, req.Password, req.Bio, req.ProfileImage)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already in use"})
			return
		}
		log.Printf("[AuthHandler] chef registration failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register chef"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Chef registered successfully",
		"chef":    account.AsChef(),
		"token":   token,
	})
}

// Login is unified for both kinds: the email resolves to exactly one
// principal and the issued token carries that principal's role.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		log.Printf("[AuthHandler] login failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"role":    account.Kind,
		"token":   token,
	})
}
