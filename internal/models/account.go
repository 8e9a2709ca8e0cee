package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountKind discriminates the two principal types stored in the
// accounts table.
type AccountKind string

const (
	AccountKindUser AccountKind = "user"
	AccountKindChef AccountKind = "chef"
)

// Account is the unified identity record for both users and chefs.
// Keeping both kinds in one table gives email a real unique constraint
// across the whole principal namespace.
type Account struct {
	ID           uuid.UUID   `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	Kind         AccountKind `gorm:"size:10;not null;index" json:"-"`
	Name         string      `gorm:"size:50;not null" json:"name"`
	Email        string      `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string      `gorm:"not null" json:"-"`
	Bio          string      `gorm:"type:text" json:"bio,omitempty"`
	ProfileImage string      `gorm:"size:255" json:"profile_image,omitempty"`
	CoverImage   string      `gorm:"size:255" json:"cover_image,omitempty"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// User is the outward shape of a user account.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	ProfileImage string    `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Chef is the outward shape of a chef account.
type Chef struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Bio          string    `json:"bio,omitempty"`
	ProfileImage string    `json:"profile_image,omitempty"`
	CoverImage   string    `json:"cover_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// AsUser projects the account as a user.
func (a *Account) AsUser() User {
	return User{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		ProfileImage: a.ProfileImage,
		CreatedAt:    a.CreatedAt,
	}
}

// AsChef projects the account as a chef.
func (a *Account) AsChef() Chef {
	return Chef{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		Bio:          a.Bio,
		ProfileImage: a.ProfileImage,
		CoverImage:   a.CoverImage,
		CreatedAt:    a.CreatedAt,
	}
}
