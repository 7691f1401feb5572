package repository

import (
	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"gorm.io/gorm"
)

type PaymentRepository struct{ DB *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{DB: db} }

func (r *PaymentRepository) Create(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *PaymentRepository) GetByReference(reference string) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.Where("reference = ?", reference).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) GetByReferenceForUser(reference string, userID uint) (*entity.Payment, error) {
	var p entity.Payment
	err := r.DB.Where("reference = ? AND user_id = ?", reference, userID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) GetByOrderID(orderID uint) (*entity.Payment, error) {
	var p entity.Payment
	err := r.DB.Where("order_id = ?", orderID).Order("id DESC").First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Save rewrites a reconciled payment. Keyed by the unique reference,
// so repeated verifications land on the same row.
func (r *PaymentRepository) Save(tx *gorm.DB, p *entity.Payment) error {
	return tx.Save(p).Error
}
