package repository

import (
	"errors"

	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetOrCreateCart returns the user's cart, creating an empty one on
// first access.
func (r *CartRepository) GetOrCreateCart(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) GetCartWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) GetCartByIDForUser(cartID, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("id = ? AND user_id = ?", cartID, userID).
		Preload("Items").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindLine returns the line for a menu item already in the cart, nil
// when absent.
func (r *CartRepository) FindLine(cartID, menuItemID uint) (*entity.CartItem, error) {
	var line entity.CartItem
	err := r.DB.Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).First(&line).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *CartRepository) GetLine(cartID, lineID uint) (*entity.CartItem, error) {
	var line entity.CartItem
	err := r.DB.Where("id = ? AND cart_id = ?", lineID, cartID).First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *CartRepository) SaveLine(tx *gorm.DB, line *entity.CartItem) error {
	return tx.Save(line).Error
}

func (r *CartRepository) DeleteLine(tx *gorm.DB, cartID, lineID uint) error {
	return tx.Where("id = ? AND cart_id = ?", lineID, cartID).Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, cartID uint) error {
	if err := tx.Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Model(&entity.Cart{}).Where("id = ?", cartID).Update("total", 0).Error
}

// RecomputeTotal re-sums the line subtotals and persists the cart
// total. Called after every cart mutation.
func (r *CartRepository) RecomputeTotal(tx *gorm.DB, cartID uint) (float64, error) {
	var total float64
	err := tx.Model(&entity.CartItem{}).
		Where("cart_id = ?", cartID).
		Select("COALESCE(SUM(subtotal), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if err := tx.Model(&entity.Cart{}).Where("id = ?", cartID).Update("total", total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
