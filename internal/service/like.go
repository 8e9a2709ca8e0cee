package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cooknest/backend/internal/models"
)

// LikeService maintains the user-likes-recipe relation and the chef
// statistics derived from it.
type LikeService struct {
	db *gorm.DB
}

func NewLikeService(db *gorm.DB) *LikeService {
	return &LikeService{db: db}
}

// ChefStats are computed fresh on every call; likes are counted through the
// recipe join, not kept as a stored counter.
type ChefStats struct {
	TotalRecipes int64 `json:"totalRecipes"`
	TotalLikes   int64 `json:"totalLikes"`
}

// LikeRecipe records that a user liked a recipe. A duplicate like is a
// normal rejection, not a hard error; the unique index backs up the check.
func (s *LikeService) LikeRecipe(userID, recipeID uuid.UUID) error {
	var recipe models.Recipe
	if err := s.db.First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	var count int64
	if err := s.db.Model(&models.LikedRecipe{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrAlreadyLiked
	}

	like := models.LikedRecipe{UserID: userID, RecipeID: recipeID}
	if err := s.db.Create(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyLiked
		}
		return err
	}
	return nil
}

// UnlikeRecipe removes a like if present. Unliking a recipe that was never
// liked succeeds; the delete is idempotent.
func (s *LikeService) UnlikeRecipe(userID, recipeID uuid.UUID) error {
	return s.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.LikedRecipe{}).Error
}

// GetLikedRecipes returns the recipes a user has liked, newest like first.
func (s *LikeService) GetLikedRecipes(userID uuid.UUID) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.Model(&models.Recipe{}).
		Joins("JOIN liked_recipes ON liked_recipes.recipe_id = recipes.id").
		Where("liked_recipes.user_id = ?", userID).
		Order("liked_recipes.created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetChefStats counts a chef's recipes and the likes those recipes received.
func (s *LikeService) GetChefStats(chefID uuid.UUID) (*ChefStats, error) {
	var chef models.Account
	if err := s.db.Where("id = ? AND kind = ?", chefID, models.AccountKindChef).First(&chef).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var stats ChefStats
	if err := s.db.Model(&models.Recipe{}).
		Where("chef_id = ?", chefID).
		Count(&stats.TotalRecipes).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.LikedRecipe{}).
		Joins("JOIN recipes ON recipes.id = liked_recipes.recipe_id").
		Where("recipes.chef_id = ?", chefID).
		Count(&stats.TotalLikes).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
