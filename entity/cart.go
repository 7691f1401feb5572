package entity

import (
	"gorm.io/gorm"
)

// Cart is the per-user mutable pre-order line collection. One cart per
// user, created lazily on first access. Total is always kept equal to
// the sum of the item subtotals.
type Cart struct {
	gorm.Model
	UserID uint    `gorm:"uniqueIndex" json:"userId"`
	User   User    `json:"-"`
	Total  float64 `gorm:"not null;default:0" json:"total"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
