package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cooknest/backend/internal/models"
	"github.com/cooknest/backend/internal/types"
)

// tokenTTL is the absolute lifetime of an issued token. There is no
// revocation; a token stays valid until it expires.
const tokenTTL = 2 * time.Hour

// AuthService registers and authenticates both principal kinds against the
// unified accounts table and issues role-scoped JWT tokens.
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
	}
}

// FindAccountByEmail resolves which principal owns an email, if any. Users
// and chefs share one email namespace, so a single lookup answers both.
func (s *AuthService) FindAccountByEmail(email string) (*models.Account, error) {
	var account models.Account
	if err := s.db.Where("email = ?", email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// RegisterUser creates a user account and returns it with a fresh token.
func (s *AuthService) RegisterUser(name, email, password string) (*models.Account, string, error) {
	account := models.Account{
		Kind:  models.AccountKindUser,
		Name:  name,
		Email: email,
	}
	return s.register(&account, password)
}

// RegisterChef creates a chef account and returns it with a fresh token.
func (s *AuthService) RegisterChef(name, email, password, bio, profileImage string) (*models.Account, string, error) {
	account := models.Account{
		Kind:         models.AccountKindChef,
		Name:         name,
		Email:        email,
		Bio:          bio,
		ProfileImage: profileImage,
	}
	return s.register(&account, password)
}

func (s *AuthService) register(account *models.Account, password string) (*models.Account, string, error) {
	if password == "" {
		return nil, "", errors.New("password is required")
	}

	// The unique index on email is what actually guarantees uniqueness;
	// the lookup just gives callers a friendly error on the common path.
	if _, err := s.FindAccountByEmail(account.Email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return nil, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	account.PasswordHash = string(hashed)

	if err := s.db.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := s.GenerateToken(account)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

// Login resolves the principal by email, verifies the password and issues a
// token carrying the resolved role.
func (s *AuthService) Login(email, password string) (*models.Account, string, error) {
	account, err := s.FindAccountByEmail(email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.GenerateToken(account)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

// GenerateToken mints a signed token for the account with the role taken
// from the account kind.
func (s *AuthService) GenerateToken(account *models.Account) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":    account.ID.String(),
		"email": account.Email,
		"role":  string(account.Kind),
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken verifies the signature and expiry and returns the claims.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	idStr, ok := claims["id"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, err
	}

	email, _ := claims["email"].(string)
	role, ok := claims["role"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return &types.TokenClaims{
		ID:    id,
		Email: email,
		Role:  types.Role(role),
	}, nil
}
