package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe categories and dish types accepted by the API.
const (
	CategoryBreakfast = "Breakfast"
	CategoryLunch     = "Lunch"
	CategoryDinner    = "Dinner"
	CategorySnack     = "Snack"
	CategoryDessert   = "Dessert"

	TypeVeg    = "Veg"
	TypeNonVeg = "Non-Veg"
)

// JSONStringArray is a custom type for handling string arrays in a JSON column
type JSONStringArray []string

// Value implements the driver.Valuer interface
func (a JSONStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

type Recipe struct {
	ID           uuid.UUID       `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	ChefID       uuid.UUID       `gorm:"type:varchar(36);not null;index" json:"chef_id"`
	RecipeName   string          `gorm:"size:100;not null" json:"recipe_name"`
	Image        string          `gorm:"size:255" json:"image,omitempty"`
	Category     string          `gorm:"size:20" json:"category"`
	CuisineType  string          `gorm:"size:50" json:"cuisine_type"`
	Rating       float64         `gorm:"default:0" json:"rating"`
	Time         string          `gorm:"size:50" json:"time"`
	Type         string          `gorm:"size:10" json:"type"`
	Description  string          `gorm:"type:text" json:"description"`
	Ingredients  JSONStringArray `gorm:"type:json;not null;default:'[]'" json:"ingredients"`
	Instructions JSONStringArray `gorm:"type:json;not null;default:'[]'" json:"instructions"`
	// ChefName is copied from the owning chef at creation time and is not
	// kept in sync with later name changes.
	ChefName string `gorm:"size:50" json:"chefName"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
