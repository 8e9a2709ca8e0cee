package service_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cooknest/backend/internal/models"
	"github.com/cooknest/backend/internal/service"
)

func createChef(t *testing.T, db *gorm.DB, name string) *models.Account {
	t.Helper()
	authSvc := service.NewAuthService(db, "test-secret")
	email := fmt.Sprintf("%s@example.com", name)
	account, _, err := authSvc.RegisterChef(name, email, "pw123456", "Bio for "+name, "")
	require.NoError(t, err)
	return account
}

func createUser(t *testing.T, db *gorm.DB, name string) *models.Account {
	t.Helper()
	authSvc := service.NewAuthService(db, "test-secret")
	email := fmt.Sprintf("%s@example.com", name)
	account, _, err := authSvc.RegisterUser(name, email, "pw123456")
	require.NoError(t, err)
	return account
}

func createRecipe(t *testing.T, db *gorm.DB, chef *models.Account, name string) *models.Recipe {
	t.Helper()
	recipeSvc := service.NewRecipeService(db)
	recipe, err := recipeSvc.CreateRecipe(chef.ID, service.RecipeInput{
		RecipeName:   name,
		Category:     models.CategoryDinner,
		CuisineType:  "Italian",
		Time:         "30 min",
		Type:         models.TypeVeg,
		Description:  "Test recipe",
		Ingredients:  []string{"salt", "pepper"},
		Instructions: []string{"mix", "cook"},
	})
	require.NoError(t, err)
	return recipe
}
