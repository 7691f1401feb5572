package repository

import (
	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"gorm.io/gorm"
)

type NotificationRepository struct{ DB *gorm.DB }

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(n *entity.Notification) error {
	return r.DB.Create(n).Error
}

type NotificationFilter struct {
	UserID uint
	Type   entity.NotificationType
	IsRead *bool
	Skip   int
	Limit  int
}

func (r *NotificationRepository) List(f NotificationFilter) ([]entity.Notification, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 100
	}
	if f.Skip < 0 {
		f.Skip = 0
	}

	q := r.DB.Model(&entity.Notification{})
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.IsRead != nil {
		q = q.Where("is_read = ?", *f.IsRead)
	}

	var notes []entity.Notification
	err := q.Order("created_at DESC").Offset(f.Skip).Limit(f.Limit).Find(&notes).Error
	return notes, err
}

func (r *NotificationRepository) GetForUser(id, userID uint) (*entity.Notification, error) {
	var n entity.Notification
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&n).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepository) MarkRead(id uint) error {
	return r.DB.Model(&entity.Notification{}).Where("id = ?", id).
		Update("is_read", true).Error
}
