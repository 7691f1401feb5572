package entity

import (
	"time"

	"gorm.io/gorm"
)

// Delivery is the status history for one order, created lazily on the
// first admin status update or driver assignment. StatusHistory maps a
// status name to the time it was last entered; repeating a status
// overwrites that key.
type Delivery struct {
	gorm.Model
	OrderID uint  `gorm:"uniqueIndex" json:"orderId"`
	Order   Order `json:"-"`
	UserID  uint  `gorm:"index" json:"userId"`

	Status  string `json:"status"`
	Message string `json:"message"`

	DriverID    string `json:"driverId"`
	DriverName  string `json:"driverName"`
	DriverPhone string `json:"driverPhone"`

	StatusUpdatedAt time.Time            `json:"statusUpdatedAt"`
	StatusHistory   map[string]time.Time `gorm:"serializer:json" json:"statusHistory"`
}
