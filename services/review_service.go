package services

import (
	"errors"

	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"github.com/Ah-ugo/Amber-Foods-backend/repository"
	"gorm.io/gorm"
)

// ReviewService enforces one review per user per menu item and keeps
// the item's rating aggregate in step with the review set.
type ReviewService struct {
	Reviews *repository.ReviewRepository
	Menu    *repository.MenuRepository
	Users   *repository.UserRepository
}

func NewReviewService(reviews *repository.ReviewRepository, menu *repository.MenuRepository,
	users *repository.UserRepository) *ReviewService {
	return &ReviewService{Reviews: reviews, Menu: menu, Users: users}
}

type CreateReviewInput struct {
	MenuItemID uint   `json:"menuItemId" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}

func (s *ReviewService) Create(userID uint, in *CreateReviewInput) (*entity.Review, error) {
	if _, err := s.Menu.GetItem(in.MenuItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Menu item not found")
		}
		return nil, err
	}

	existing, err := s.Reviews.FindByUserAndItem(userID, in.MenuItemID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, badRequest("You have already reviewed this item")
	}

	user, err := s.Users.FindByID(userID)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		MenuItemID: in.MenuItemID,
		UserID:     userID,
		UserName:   user.FullName,
		UserImage:  user.ProfileImageURL,
		Rating:     in.Rating,
		Comment:    in.Comment,
	}
	if err := s.Reviews.Create(review); err != nil {
		return nil, err
	}
	if err := s.refreshAggregate(in.MenuItemID); err != nil {
		return nil, err
	}
	return review, nil
}

type UpdateReviewInput struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment"`
}

func (s *ReviewService) Update(userID, reviewID uint, in *UpdateReviewInput) (*entity.Review, error) {
	review, err := s.Reviews.GetByID(reviewID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("Review not found")
	}
	if err != nil {
		return nil, err
	}
	if review.UserID != userID {
		return nil, notFound("Review not found")
	}

	ratingChanged := false
	if in.Rating != nil && *in.Rating != review.Rating {
		review.Rating = *in.Rating
		ratingChanged = true
	}
	if in.Comment != nil {
		review.Comment = *in.Comment
	}
	if err := s.Reviews.Save(review); err != nil {
		return nil, err
	}
	if ratingChanged {
		if err := s.refreshAggregate(review.MenuItemID); err != nil {
			return nil, err
		}
	}
	return review, nil
}

func (s *ReviewService) Delete(userID, reviewID uint, admin bool) error {
	review, err := s.Reviews.GetByID(reviewID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound("Review not found")
	}
	if err != nil {
		return err
	}
	if !admin && review.UserID != userID {
		return notFound("Review not found")
	}

	if err := s.Reviews.Delete(reviewID); err != nil {
		return err
	}
	return s.refreshAggregate(review.MenuItemID)
}

func (s *ReviewService) ListByItem(menuItemID uint, skip, limit int) ([]entity.Review, error) {
	if _, err := s.Menu.GetItem(menuItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Menu item not found")
		}
		return nil, err
	}
	return s.Reviews.ListByItem(menuItemID, skip, limit)
}

func (s *ReviewService) ListMine(userID uint, skip, limit int) ([]entity.Review, error) {
	return s.Reviews.ListByUser(userID, skip, limit)
}

// refreshAggregate recomputes the mean and count from scratch. A
// deleted last review resets the item to zero.
func (s *ReviewService) refreshAggregate(menuItemID uint) error {
	avg, count, err := s.Reviews.Aggregate(menuItemID)
	if err != nil {
		return err
	}
	return s.Menu.UpdateRatingAggregate(menuItemID, avg, int(count))
}
