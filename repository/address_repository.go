package repository

import (
	"errors"

	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"gorm.io/gorm"
)

type AddressRepository struct{ DB *gorm.DB }

func NewAddressRepository(db *gorm.DB) *AddressRepository { return &AddressRepository{DB: db} }

func (r *AddressRepository) ListForUser(userID uint) ([]entity.Address, error) {
	var addrs []entity.Address
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&addrs).Error
	return addrs, err
}

func (r *AddressRepository) GetForUser(id, userID uint) (*entity.Address, error) {
	var a entity.Address
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AddressRepository) CountForUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Address{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *AddressRepository) Create(tx *gorm.DB, a *entity.Address) error {
	return tx.Create(a).Error
}

func (r *AddressRepository) Save(tx *gorm.DB, a *entity.Address) error {
	return tx.Save(a).Error
}

func (r *AddressRepository) Delete(tx *gorm.DB, id uint) error {
	return tx.Delete(&entity.Address{}, id).Error
}

// UnsetDefaults clears IsDefault on every address of the user except
// the given one (0 = no exception).
func (r *AddressRepository) UnsetDefaults(tx *gorm.DB, userID, exceptID uint) error {
	q := tx.Model(&entity.Address{}).Where("user_id = ?", userID)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	return q.Update("is_default", false).Error
}

// FindAnother picks any other address of the user, for default
// promotion after a delete. Returns nil when none remain.
func (r *AddressRepository) FindAnother(tx *gorm.DB, userID, exceptID uint) (*entity.Address, error) {
	var a entity.Address
	err := tx.Where("user_id = ? AND id <> ?", userID, exceptID).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
