package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikedRecipe joins a user to a recipe they liked. The composite unique
// index closes the check-then-insert race under concurrent duplicate likes.
type LikedRecipe struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_liked_user_recipe" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_liked_user_recipe" json:"recipe_id"`
}

func (LikedRecipe) TableName() string {
	return "liked_recipes"
}

func (l *LikedRecipe) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
