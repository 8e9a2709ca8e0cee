package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cooknest/backend/internal/models"
)

// RecipeService handles recipe CRUD and search. Mutations are restricted to
// the owning chef; ownership is checked against verified token claims.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// RecipeInput carries the client-supplied recipe fields. The owning chef is
// always taken from token claims, never from the request body.
type RecipeInput struct {
	RecipeName   string
	Image        string
	Category     string
	CuisineType  string
	Rating       float64
	Time         string
	Type         string
	Description  string
	Ingredients  []string
	Instructions []string
}

// ChefSummary is the slice of chef detail joined onto recipe reads.
type ChefSummary struct {
	Name         string `json:"name"`
	Bio          string `json:"bio,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
}

// RecipeWithChef is a recipe with its owning chef's public details.
type RecipeWithChef struct {
	models.Recipe
	Chef *ChefSummary `json:"chef,omitempty"`
}

// ListOptions are the supported search filters and ordering.
type ListOptions struct {
	Query       string
	Category    string
	CuisineType string
	Type        string
	Sort        string
	Order       string
}

var sortableColumns = map[string]string{
	"created_at":  "created_at",
	"rating":      "rating",
	"recipe_name": "recipe_name",
}

// CreateRecipe inserts a recipe owned by the given chef, capturing the
// chef's name as a denormalized field.
func (s *RecipeService) CreateRecipe(chefID uuid.UUID, input RecipeInput) (*models.Recipe, error) {
	var chef models.Account
	if err := s.db.Where("id = ? AND kind = ?", chefID, models.AccountKindChef).First(&chef).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	recipe := models.Recipe{
		ChefID:       chefID,
		RecipeName:   input.RecipeName,
		Image:        input.Image,
		Category:     input.Category,
		CuisineType:  input.CuisineType,
		Rating:       input.Rating,
		Time:         input.Time,
		Type:         input.Type,
		Description:  input.Description,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
		ChefName:     chef.Name,
	}
	if err := s.db.Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetRecipe fetches a recipe with its chef details.
func (s *RecipeService) GetRecipe(id uuid.UUID) (*RecipeWithChef, error) {
	var recipe models.Recipe
	if err := s.db.First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	joined, err := s.attachChefs([]models.Recipe{recipe})
	if err != nil {
		return nil, err
	}
	return &joined[0], nil
}

// ListRecipes returns recipes matching the options, each with chef details.
func (s *RecipeService) ListRecipes(opts ListOptions) ([]RecipeWithChef, error) {
	query := s.db.Model(&models.Recipe{})

	if opts.Query != "" {
		like := "%" + strings.ToLower(opts.Query) + "%"
		query = query.Where("LOWER(recipe_name) LIKE ?", like)
	}
	if opts.Category != "" {
		query = query.Where("category = ?", opts.Category)
	}
	if opts.CuisineType != "" {
		query = query.Where("cuisine_type = ?", opts.CuisineType)
	}
	if opts.Type != "" {
		query = query.Where("type = ?", opts.Type)
	}

	column, ok := sortableColumns[opts.Sort]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(opts.Order, "asc") {
		direction = "ASC"
	}

	var recipes []models.Recipe
	if err := query.Order(column + " " + direction).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return s.attachChefs(recipes)
}

// UpdateRecipe applies client changes to a recipe after verifying the
// caller owns it. Existence is checked before ownership.
func (s *RecipeService) UpdateRecipe(id, chefID uuid.UUID, input RecipeInput) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if recipe.ChefID != chefID {
		return nil, ErrForbidden
	}

	recipe.RecipeName = input.RecipeName
	recipe.Image = input.Image
	recipe.Category = input.Category
	recipe.CuisineType = input.CuisineType
	recipe.Rating = input.Rating
	recipe.Time = input.Time
	recipe.Type = input.Type
	recipe.Description = input.Description
	recipe.Ingredients = input.Ingredients
	recipe.Instructions = input.Instructions

	if err := s.db.Save(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// DeleteRecipe removes a recipe and its likes after verifying ownership.
func (s *RecipeService) DeleteRecipe(id, chefID uuid.UUID) error {
	var recipe models.Recipe
	if err := s.db.First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if recipe.ChefID != chefID {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.LikedRecipe{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, "id = ?", id).Error
	})
}

// attachChefs joins chef details onto recipes with a single accounts query.
func (s *RecipeService) attachChefs(recipes []models.Recipe) ([]RecipeWithChef, error) {
	ids := make([]uuid.UUID, 0, len(recipes))
	seen := make(map[uuid.UUID]bool, len(recipes))
	for _, r := range recipes {
		if !seen[r.ChefID] {
			seen[r.ChefID] = true
			ids = append(ids, r.ChefID)
		}
	}

	summaries := make(map[uuid.UUID]*ChefSummary, len(ids))
	if len(ids) > 0 {
		var chefs []models.Account
		if err := s.db.Where("id IN ?", ids).Find(&chefs).Error; err != nil {
			return nil, err
		}
		for i := range chefs {
			summaries[chefs[i].ID] = &ChefSummary{
				Name:         chefs[i].Name,
				Bio:          chefs[i].Bio,
				ProfileImage: chefs[i].ProfileImage,
			}
		}
	}

	result := make([]RecipeWithChef, len(recipes))
	for i, r := range recipes {
		result[i] = RecipeWithChef{Recipe: r, Chef: summaries[r.ChefID]}
	}
	return result, nil
}
