package entity

import (
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationOrder     NotificationType = "order"
	NotificationPromotion NotificationType = "promotion"
	NotificationSystem    NotificationType = "system"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationOrder, NotificationPromotion, NotificationSystem:
		return true
	}
	return false
}

type Notification struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	Title   string           `gorm:"not null" json:"title"`
	Message string           `json:"message"`
	Type    NotificationType `gorm:"type:varchar(16);not null;default:system" json:"type"`
	OrderID *uint            `json:"orderId,omitempty"`
	IsRead  bool             `gorm:"not null;default:false" json:"isRead"`
}
