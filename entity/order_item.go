package entity

import (
	"gorm.io/gorm"
)

// OrderItem is one snapshotted cart line. Priced from the catalog at
// order creation and never re-priced afterwards.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint    `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Subtotal   float64 `json:"subtotal"`
	ImageURL   string  `json:"imageUrl"`
}
