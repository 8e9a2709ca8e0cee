package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cooknest/backend/internal/models"
)

// AccountService handles reads, updates and deletes of user and chef
// accounts, including the referential cleanup deletes imply.
type AccountService struct {
	db *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

// AccountUpdate carries the mutable account fields. Nil means "leave as is".
type AccountUpdate struct {
	Name         *string
	Email        *string
	Bio          *string
	ProfileImage *string
	CoverImage   *string
}

// GetAccount fetches an account of the given kind.
func (s *AccountService) GetAccount(id uuid.UUID, kind models.AccountKind) (*models.Account, error) {
	var account models.Account
	if err := s.db.Where("id = ? AND kind = ?", id, kind).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// ListUsers returns all user accounts.
func (s *AccountService) ListUsers() ([]models.User, error) {
	accounts, err := s.listAccounts(models.AccountKindUser)
	if err != nil {
		return nil, err
	}
	users := make([]models.User, len(accounts))
	for i := range accounts {
		users[i] = accounts[i].AsUser()
	}
	return users, nil
}

// ListChefs returns all chef accounts.
func (s *AccountService) ListChefs() ([]models.Chef, error) {
	accounts, err := s.listAccounts(models.AccountKindChef)
	if err != nil {
		return nil, err
	}
	chefs := make([]models.Chef, len(accounts))
	for i := range accounts {
		chefs[i] = accounts[i].AsChef()
	}
	return chefs, nil
}

func (s *AccountService) listAccounts(kind models.AccountKind) ([]models.Account, error) {
	var accounts []models.Account
	if err := s.db.Where("kind = ?", kind).Order("created_at").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// GetChefWithRecipes fetches a chef together with their recipes.
func (s *AccountService) GetChefWithRecipes(id uuid.UUID) (*models.Chef, []models.Recipe, error) {
	account, err := s.GetAccount(id, models.AccountKindChef)
	if err != nil {
		return nil, nil, err
	}

	var recipes []models.Recipe
	if err := s.db.Where("chef_id = ?", id).Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, nil, err
	}

	chef := account.AsChef()
	return &chef, recipes, nil
}

// UpdateAccount applies the given changes to an account of the given kind.
// An email change re-checks uniqueness across both principal kinds.
func (s *AccountService) UpdateAccount(id uuid.UUID, kind models.AccountKind, update AccountUpdate) (*models.Account, error) {
	account, err := s.GetAccount(id, kind)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		account.Name = *update.Name
	}
	if update.Email != nil && *update.Email != account.Email {
		var count int64
		if err := s.db.Model(&models.Account{}).Where("email = ?", *update.Email).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrEmailTaken
		}
		account.Email = *update.Email
	}
	if update.Bio != nil {
		account.Bio = *update.Bio
	}
	if update.ProfileImage != nil {
		account.ProfileImage = *update.ProfileImage
	}
	if update.CoverImage != nil {
		account.CoverImage = *update.CoverImage
	}

	if err := s.db.Save(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return account, nil
}

// DeleteAccount removes an account and its dependent rows: a user's likes,
// or a chef's recipes together with the likes those recipes received.
func (s *AccountService) DeleteAccount(id uuid.UUID, kind models.AccountKind) error {
	if _, err := s.GetAccount(id, kind); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		switch kind {
		case models.AccountKindUser:
			if err := tx.Where("user_id = ?", id).Delete(&models.LikedRecipe{}).Error; err != nil {
				return err
			}
		case models.AccountKindChef:
			recipeIDs := tx.Model(&models.Recipe{}).Select("id").Where("chef_id = ?", id)
			if err := tx.Where("recipe_id IN (?)", recipeIDs).Delete(&models.LikedRecipe{}).Error; err != nil {
				return err
			}
			if err := tx.Where("chef_id = ?", id).Delete(&models.Recipe{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Account{}, "id = ?", id).Error
	})
}
