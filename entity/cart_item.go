package entity

import (
	"gorm.io/gorm"
)

// CartItem denormalizes name, price and thumbnail from the catalog at
// the time of the add/update; subtotal = price * quantity.
type CartItem struct {
	gorm.Model
	CartID uint `gorm:"index" json:"cartId"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
	ImageURL string  `json:"imageUrl"`
}
