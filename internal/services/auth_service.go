package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/zentask/zentask-platform/internal/config"
	"github.com/zentask/zentask-platform/internal/database"
	"github.com/zentask/zentask-platform/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	config *config.Config
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{config: cfg}
}

// JWT Claims
type Claims struct {
	UserID uuid.UUID       `json:"user_id"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// HashPassword creates a bcrypt hash of the password
func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a password with a hash
func (s *AuthService) CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateToken creates a JWT token for a profile
func (s *AuthService) GenerateToken(profile *models.Profile) (string, error) {
	expirationTime := time.Now().Add(time.Duration(s.config.JWTExpiration) * time.Hour)

	claims := &Claims{
		UserID: profile.ID,
		Email:  profile.Email,
		Role:   profile.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    s.config.AppName,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateToken validates a JWT token and returns the claims
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.config.JWTSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// Register creates a profile for a new identity. Every signup starts as a
// regular active member; the admin role is only ever granted through the
// admin endpoints or the seed step.
func (s *AuthService) Register(email, password, fullName string) (*models.Profile, error) {
	db := database.GetDB()

	var existing models.Profile
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, errors.New("email already registered")
	}

	passwordHash, err := s.HashPassword(password)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     fullName,
		Role:         models.RoleUser,
		Active:       true,
	}

	if err := db.Create(profile).Error; err != nil {
		return nil, err
	}

	return profile, nil
}

// Login authenticates a profile and returns a token. Deactivated accounts
// cannot sign in.
func (s *AuthService) Login(email, password string) (*models.Profile, string, error) {
	db := database.GetDB()

	var profile models.Profile
	if err := db.Where("email = ?", email).First(&profile).Error; err != nil {
		return nil, "", errors.New("invalid credentials")
	}

	if !s.CheckPassword(password, profile.PasswordHash) {
		return nil, "", errors.New("invalid credentials")
	}

	if !profile.Active {
		return nil, "", errors.New("account is deactivated")
	}

	token, err := s.GenerateToken(&profile)
	if err != nil {
		return nil, "", err
	}

	return &profile, token, nil
}

// GetProfileByEmail retrieves a profile by email
func (s *AuthService) GetProfileByEmail(email string) (*models.Profile, error) {
	db := database.GetDB()

	var profile models.Profile
	if err := db.Where("email = ?", email).First(&profile).Error; err != nil {
		return nil, err
	}

	return &profile, nil
}
