package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"github.com/Ah-ugo/Amber-Foods-backend/pkg/cloudinary"
	"github.com/Ah-ugo/Amber-Foods-backend/repository"
	"gorm.io/gorm"
)

type UserService struct {
	Users  *repository.UserRepository
	Images *cloudinary.Client
}

func NewUserService(users *repository.UserRepository, images *cloudinary.Client) *UserService {
	return &UserService{Users: users, Images: images}
}

func (s *UserService) Get(userID uint) (*entity.User, error) {
	user, err := s.Users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("User not found")
	}
	return user, err
}

// UpdateProfile changes full name and/or phone and optionally replaces
// the profile image on the image host.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, fullName, phone string, image []byte) (*entity.User, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if v := strings.TrimSpace(fullName); v != "" {
		updates["full_name"] = v
	}
	if v := strings.TrimSpace(phone); v != "" {
		updates["phone"] = v
	}

	if len(image) > 0 {
		res, err := s.Images.Upload(ctx, image, "user_profiles", fmt.Sprintf("user_%d", userID))
		if err != nil {
			return nil, upstream(err)
		}
		updates["profile_image"] = res.PublicID
		updates["profile_image_url"] = res.URL
	}

	if len(updates) == 0 {
		return user, nil
	}
	if err := s.Users.Update(userID, updates); err != nil {
		return nil, err
	}
	return s.Get(userID)
}

func (s *UserService) List(skip, limit int) ([]entity.User, error) {
	return s.Users.List(skip, limit)
}
