package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	IsActive bool   `gorm:"not null;default:true" json:"isActive"`
	IsAdmin  bool   `gorm:"not null;default:false" json:"isAdmin"`

	// Cloudinary public id + delivery URL of the profile picture.
	ProfileImage    string `json:"profileImage"`
	ProfileImageURL string `json:"profileImageUrl"`

	// Relations — preload only when needed
	Orders        []Order        `json:"-"`
	Reviews       []Review       `json:"-"`
	Addresses     []Address      `json:"-"`
	Notifications []Notification `json:"-"`
}
