package services

import (
	"strings"
	"time"

	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"github.com/Ah-ugo/Amber-Foods-backend/repository"
	"github.com/Ah-ugo/Amber-Foods-backend/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and token refresh.
type AuthService struct {
	Users     *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(users *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Users: users, jwtSecret: secret, jwtTTL: ttl}
}

func (s *AuthService) Register(email, password, fullName, phone string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.Users.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, badRequest("Email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashed),
		FullName: strings.TrimSpace(fullName),
		Phone:    strings.TrimSpace(phone),
		IsActive: true,
	}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Users.FindByEmail(email)
	if err != nil {
		return "", nil, unauthorized("Incorrect email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, unauthorized("Incorrect email or password")
	}
	if !user.IsActive {
		return "", nil, badRequest("Inactive user")
	}

	token, err := utils.GenerateToken(user.ID, user.IsAdmin, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Refresh issues a fresh token for an already-authenticated user.
func (s *AuthService) Refresh(userID uint) (string, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		return "", notFound("User not found")
	}
	return utils.GenerateToken(user.ID, user.IsAdmin, s.jwtSecret, s.jwtTTL)
}
