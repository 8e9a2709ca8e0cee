package database

import (
	"gorm.io/gorm"

	"github.com/cooknest/backend/internal/models"
)

// Migrate brings the schema up to date. The unique indexes on
// accounts.email and liked_recipes(user_id, recipe_id) are created here.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Account{},
		&models.Recipe{},
		&models.LikedRecipe{},
	)
}
