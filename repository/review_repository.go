package repository

import (
	"errors"

	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"gorm.io/gorm"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{DB: db} }

func (r *ReviewRepository) Create(rev *entity.Review) error {
	return r.DB.Create(rev).Error
}

func (r *ReviewRepository) Save(rev *entity.Review) error {
	return r.DB.Save(rev).Error
}

func (r *ReviewRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Review{}, id).Error
}

func (r *ReviewRepository) GetByID(id uint) (*entity.Review, error) {
	var rev entity.Review
	if err := r.DB.First(&rev, id).Error; err != nil {
		return nil, err
	}
	return &rev, nil
}

// FindByUserAndItem returns nil when the pair has no review yet.
func (r *ReviewRepository) FindByUserAndItem(userID, menuItemID uint) (*entity.Review, error) {
	var rev entity.Review
	err := r.DB.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).First(&rev).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *ReviewRepository) ListByItem(menuItemID uint, skip, limit int) ([]entity.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}
	var reviews []entity.Review
	err := r.DB.Where("menu_item_id = ?", menuItemID).
		Order("created_at DESC").Offset(skip).Limit(limit).
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) ListByUser(userID uint, skip, limit int) ([]entity.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}
	var reviews []entity.Review
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Offset(skip).Limit(limit).
		Find(&reviews).Error
	return reviews, err
}

// Aggregate re-scans every review for the item. Full scan over an
// incremental counter keeps the mean exact under concurrent edits.
func (r *ReviewRepository) Aggregate(menuItemID uint) (avg float64, count int64, err error) {
	var row struct {
		Avg   float64
		Count int64
	}
	err = r.DB.Model(&entity.Review{}).
		Where("menu_item_id = ?", menuItemID).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Scan(&row).Error
	return row.Avg, row.Count, err
}
