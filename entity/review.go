package entity

import (
	"gorm.io/gorm"
)

// Review holds one user's rating of one menu item. UserName/UserImage
// are snapshots taken at write time so listings need no join. The
// (user, item) pair is unique; the service enforces it at write time
// and the index backs it up.
type Review struct {
	gorm.Model
	MenuItemID uint     `gorm:"index;uniqueIndex:idx_reviews_user_item" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
	UserID     uint     `gorm:"uniqueIndex:idx_reviews_user_item" json:"userId"`
	User       User     `json:"-"`

	UserName  string `json:"userName"`
	UserImage string `json:"userImage"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `json:"comment"`
}
