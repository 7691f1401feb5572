package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	IsAvailable bool    `gorm:"not null;default:true" json:"isAvailable"`
	IsFeatured  bool    `gorm:"not null;default:false" json:"isFeatured"`

	// Derived rating aggregate, recomputed on every review write.
	AvgRating   float64 `gorm:"not null;default:0" json:"avgRating"`
	ReviewCount int     `gorm:"not null;default:0" json:"reviewCount"`

	Categories []Category      `gorm:"many2many:menu_item_categories;" json:"categories,omitempty"`
	Images     []MenuItemImage `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"images"`

	Reviews []Review `json:"-"`
}

// MenuItemImage is one Cloudinary upload attached to a menu item.
// Position keeps the upload order; the first image is the cart thumbnail.
type MenuItemImage struct {
	gorm.Model
	MenuItemID uint   `gorm:"index" json:"menuItemId"`
	PublicID   string `json:"publicId"`
	URL        string `json:"url"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Position   int    `json:"position"`
}
