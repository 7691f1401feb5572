package entity

import (
	"gorm.io/gorm"
)

// Order is an immutable snapshot of a cart plus computed charges.
// Items and amounts are fixed at creation; only the status pair and
// the payment/delivery mirrors change afterwards.
type Order struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	DeliveryAddressID   uint   `json:"deliveryAddressId"`
	SpecialInstructions string `json:"specialInstructions"`

	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Tax         float64 `json:"tax"`
	TotalAmount float64 `json:"totalAmount"`

	Status        OrderStatus   `gorm:"type:varchar(16);not null;default:PENDING" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(16);not null;default:PENDING" json:"paymentStatus"`

	// Mirrors maintained by the payment and delivery subsystems.
	PaymentReference string `gorm:"index" json:"paymentReference"`
	DeliveryStatus   string `json:"deliveryStatus"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`

	Payments []Payment `json:"-"`
	Delivery *Delivery `json:"-"`
}
