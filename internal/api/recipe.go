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

type RecipeRequest struct {
	RecipeName   string   `json:"recipe_name" binding:"required,min=3,max=100"`
	Image        string   `json:"image" binding:"omitempty,url"`
	Category     string   `json:"category" binding:"required,oneof=Breakfast Lunch Dinner Snack Dessert"`
	CuisineType  string   `json:"cuisine_type" binding:"required"`
	Rating       float64  `json:"rating" binding:"omitempty,min=0,max=5"`
	Time         string   `json:"time"`
	Type         string   `json:"type" binding:"required,oneof=Veg Non-Veg"`
	Description  string   `json:"description" binding:"required,min=10,max=1000"`
	Ingredients  []string `json:"ingredients" binding:"required,min=1"`
	Instructions []string `json:"instructions" binding:"required,min=1"`
}

func (r RecipeRequest) toInput() service.RecipeInput {
	return service.RecipeInput{
		RecipeName:   r.RecipeName,
		Image:        r.Image,
		Category:     r.Category,
		CuisineType:  r.CuisineType,
		Rating:       r.Rating,
		Time:         r.Time,
		Type:         r.Type,
		Description:  r.Description,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
	}
}

// RecipeHandler serves public recipe reads and chef-owned mutations.
type RecipeHandler struct {
	recipeService *service.RecipeService
	authService   *service.AuthService
}

func NewRecipeHandler(recipeService *service.RecipeService, authService *service.AuthService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		authService:   authService,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)

		chefOnly := recipes.Group("")
		chefOnly.Use(middleware.AuthMiddleware(h.authService), middleware.RequireRole(types.RoleChef))
		{
			chefOnly.POST("", h.CreateRecipe)
			chefOnly.PUT("/:id", h.UpdateRecipe)
			chefOnly.DELETE("/:id", h.DeleteRecipe)
		}
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipeService.ListRecipes(service.ListOptions{
		Query:       c.Query("q"),
		Category:    c.Query("category"),
		CuisineType: c.Query("cuisine"),
		Type:        c.Query("type"),
		Sort:        c.Query("sort"),
		Order:       c.Query("order"),
	})
	if err != nil {
		log.Printf("[RecipeHandler] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipeService.GetRecipe(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// CreateRecipe takes the owning chef from the verified claims, never from
// the request body.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)

	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeService.CreateRecipe(claims.ID, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chef not found"})
			return
		}
		log.Printf("[RecipeHandler] create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recipe"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Recipe created successfully",
		"recipe":  recipe,
	})
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(id, claims.ID, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized to edit this recipe"})
		default:
			log.Printf("[RecipeHandler] update failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe updated successfully",
		"recipe":  recipe,
	})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := h.recipeService.DeleteRecipe(id, claims.ID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized to delete this recipe"})
		default:
			log.Printf("[RecipeHandler] delete failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recipe"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
}
