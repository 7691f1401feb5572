package entity

import (
	"gorm.io/gorm"
)

// Payment tracks one external gateway transaction tied to an order.
// Reference correlates the attempt with Paystack; TransactionData keeps
// the raw verify payload for audit.
type Payment struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`
	UserID  uint  `gorm:"index" json:"userId"`

	Amount           float64       `json:"amount"`
	Reference        string        `gorm:"uniqueIndex;not null" json:"reference"`
	Provider         string        `gorm:"not null;default:PAYSTACK" json:"provider"`
	Status           PaymentStatus `gorm:"type:varchar(16);not null;default:PENDING" json:"status"`
	AuthorizationURL string        `json:"authorizationUrl"`

	TransactionData map[string]any `gorm:"serializer:json" json:"transactionData,omitempty"`
}
