package services

import (
	"errors"

	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"github.com/Ah-ugo/Amber-Foods-backend/repository"
	"gorm.io/gorm"
)

// CartService keeps one cart per user and re-derives the total after
// every mutation.
type CartService struct {
	DB    *gorm.DB
	Carts *repository.CartRepository
	Menu  *repository.MenuRepository
}

func NewCartService(db *gorm.DB, carts *repository.CartRepository, menu *repository.MenuRepository) *CartService {
	return &CartService{DB: db, Carts: carts, Menu: menu}
}

func (s *CartService) Get(userID uint) (*entity.Cart, error) {
	cart, err := s.Carts.GetOrCreateCart(userID)
	if err != nil {
		return nil, err
	}
	return s.Carts.GetCartByIDForUser(cart.ID, userID)
}

// AddItem puts a menu item in the cart. Adding an item that is already
// there replaces its quantity rather than incrementing it.
func (s *CartService) AddItem(userID, menuItemID uint, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, badRequest("Quantity must be at least 1")
	}

	item, err := s.Menu.GetItemForPricing(menuItemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("Menu item not found")
	}
	if err != nil {
		return nil, err
	}
	if !item.IsAvailable {
		return nil, badRequest("Menu item is not available")
	}

	cart, err := s.Carts.GetOrCreateCart(userID)
	if err != nil {
		return nil, err
	}

	line, err := s.Carts.FindLine(cart.ID, menuItemID)
	if err != nil {
		return nil, err
	}
	if line == nil {
		line = &entity.CartItem{CartID: cart.ID, MenuItemID: menuItemID}
	}
	line.Name = item.Name
	line.Price = item.Price
	line.Quantity = quantity
	line.Subtotal = item.Price * float64(quantity)
	if len(item.Images) > 0 {
		line.ImageURL = item.Images[0].URL
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Carts.SaveLine(tx, line); err != nil {
			return err
		}
		_, err := s.Carts.RecomputeTotal(tx, cart.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.Carts.GetCartByIDForUser(cart.ID, userID)
}

// UpdateItem changes a line's quantity, re-deriving the subtotal from
// the price captured when the line was added.
func (s *CartService) UpdateItem(userID, lineID uint, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, badRequest("Quantity must be at least 1")
	}

	cart, err := s.Carts.GetCartWithItems(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("Cart not found")
	}
	if err != nil {
		return nil, err
	}

	line, err := s.Carts.GetLine(cart.ID, lineID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("Item not found in cart")
	}
	if err != nil {
		return nil, err
	}

	line.Quantity = quantity
	line.Subtotal = line.Price * float64(quantity)

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Carts.SaveLine(tx, line); err != nil {
			return err
		}
		_, err := s.Carts.RecomputeTotal(tx, cart.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.Carts.GetCartByIDForUser(cart.ID, userID)
}

func (s *CartService) RemoveItem(userID, lineID uint) (*entity.Cart, error) {
	cart, err := s.Carts.GetCartWithItems(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("Cart not found")
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.Carts.GetLine(cart.ID, lineID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Item not found in cart")
		}
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Carts.DeleteLine(tx, cart.ID, lineID); err != nil {
			return err
		}
		_, err := s.Carts.RecomputeTotal(tx, cart.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.Carts.GetCartByIDForUser(cart.ID, userID)
}

func (s *CartService) Clear(userID uint) (*entity.Cart, error) {
	cart, err := s.Carts.GetOrCreateCart(userID)
	if err != nil {
		return nil, err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Carts.ClearCart(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.Carts.GetCartByIDForUser(cart.ID, userID)
}
