package repository

import (
	"errors"

	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"gorm.io/gorm"
)

type DeliveryRepository struct{ DB *gorm.DB }

func NewDeliveryRepository(db *gorm.DB) *DeliveryRepository { return &DeliveryRepository{DB: db} }

// GetByOrderID returns nil (no error) when the order has no delivery
// record yet; tracking treats that as NOT_STARTED.
func (r *DeliveryRepository) GetByOrderID(orderID uint) (*entity.Delivery, error) {
	var d entity.Delivery
	err := r.DB.Where("order_id = ?", orderID).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DeliveryRepository) Create(tx *gorm.DB, d *entity.Delivery) error {
	return tx.Create(d).Error
}

func (r *DeliveryRepository) Save(tx *gorm.DB, d *entity.Delivery) error {
	return tx.Save(d).Error
}
