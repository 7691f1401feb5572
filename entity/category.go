package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`

	Items []MenuItem `gorm:"many2many:menu_item_categories;" json:"-"`
}
