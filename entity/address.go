package entity

import (
	"gorm.io/gorm"
)

// Address is a delivery address. Whenever a user has at least one
// address, exactly one of them carries IsDefault; the service keeps
// that invariant on create, update and delete.
type Address struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	Line1      string `gorm:"not null" json:"line1"`
	Line2      string `json:"line2"`
	City       string `gorm:"not null" json:"city"`
	State      string `gorm:"not null" json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `gorm:"not null" json:"country"`
	Label      string `json:"label"`
	Phone      string `json:"phone"`
	IsDefault  bool   `gorm:"not null;default:false" json:"isDefault"`
}
