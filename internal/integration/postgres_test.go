package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cooknest/backend/internal/models"
	"github.com/cooknest/backend/internal/service"
	"github.com/cooknest/backend/internal/testhelpers"
)

// TestPostgresFullFlow exercises the whole account/recipe/like lifecycle
// against a real postgres, including the database-level constraints the
// sqlite unit tests only approximate.
func TestPostgresFullFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}

	db := testhelpers.SetupPostgresDatabase(t)

	authSvc := service.NewAuthService(db, "test-secret")
	recipeSvc := service.NewRecipeService(db)
	likeSvc := service.NewLikeService(db)
	accountSvc := service.NewAccountService(db)

	chef, chefToken, err := authSvc.RegisterChef("Chef John", "chefjohn@example.com", "pw123456", "Italian kitchen", "")
	require.NoError(t, err)
	require.NotEmpty(t, chefToken)

	user, _, err := authSvc.RegisterUser("Home Cook", "cook@example.com", "pw123456")
	require.NoError(t, err)

	// The unique index on email holds across principal kinds even when the
	// application-level pre-check is bypassed.
	dup := models.Account{
		Kind:         models.AccountKindUser,
		Name:         "Impostor",
		Email:        "chefjohn@example.com",
		PasswordHash: "x",
	}
	err = db.Create(&dup).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	recipe, err := recipeSvc.CreateRecipe(chef.ID, service.RecipeInput{
		RecipeName:   "Pasta Primavera",
		Category:     models.CategoryDinner,
		CuisineType:  "Italian",
		Time:         "30 min",
		Type:         models.TypeVeg,
		Description:  "Spring vegetables over pasta.",
		Ingredients:  []string{"pasta", "zucchini"},
		Instructions: []string{"boil", "toss"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Chef John", recipe.ChefName)

	require.NoError(t, likeSvc.LikeRecipe(user.ID, recipe.ID))

	// The composite unique index rejects a duplicate like inserted directly.
	err = db.Create(&models.LikedRecipe{UserID: user.ID, RecipeID: recipe.ID}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	stats, err := likeSvc.GetChefStats(chef.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalRecipes)
	assert.Equal(t, int64(1), stats.TotalLikes)

	// Case-insensitive search works the same on postgres.
	results, err := recipeSvc.ListRecipes(service.ListOptions{Query: "PASTA"})
	require.NoError(t, err)
	assert.Len(t, results, 1)

	require.NoError(t, accountSvc.DeleteAccount(chef.ID, models.AccountKindChef))

	var leftoverRecipes, leftoverLikes int64
	require.NoError(t, db.Model(&models.Recipe{}).Count(&leftoverRecipes).Error)
	require.NoError(t, db.Model(&models.LikedRecipe{}).Count(&leftoverLikes).Error)
	assert.Equal(t, int64(0), leftoverRecipes)
	assert.Equal(t, int64(0), leftoverLikes)
}
