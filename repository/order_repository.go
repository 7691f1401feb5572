package repository

import (
	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// CreateOrder inserts the order and its snapshot items.
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).
		Preload("Items").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderFilter struct {
	UserID        uint
	Status        entity.OrderStatus
	PaymentStatus entity.PaymentStatus
	Skip          int
	Limit         int
}

func (r *OrderRepository) ListOrders(f OrderFilter) ([]entity.Order, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 100
	}
	if f.Skip < 0 {
		f.Skip = 0
	}

	q := r.DB.Model(&entity.Order{}).Preload("Items")
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.PaymentStatus != "" {
		q = q.Where("payment_status = ?", f.PaymentStatus)
	}

	var orders []entity.Order
	err := q.Order("created_at DESC").Offset(f.Skip).Limit(f.Limit).Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) UpdateStatus(orderID uint, status entity.OrderStatus) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("status", status).Error
}

// CancelIfCancellable flips the order to CANCELLED only while it is
// still PENDING or CONFIRMED. The guarded UPDATE makes a concurrent
// status change lose gracefully: zero rows affected means the order
// moved on.
func (r *OrderRepository) CancelIfCancellable(orderID uint) (bool, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND status IN ?", orderID,
			[]entity.OrderStatus{entity.OrderPending, entity.OrderConfirmed}).
		Update("status", entity.OrderCancelled)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// UpdatePaymentState mirrors a payment outcome onto the order.
func (r *OrderRepository) UpdatePaymentState(tx *gorm.DB, orderID uint, updates map[string]any) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Updates(updates).Error
}

// UpdateDeliveryStatus mirrors the latest delivery status onto the
// order.
func (r *OrderRepository) UpdateDeliveryStatus(tx *gorm.DB, orderID uint, status string) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("delivery_status", status).Error
}
