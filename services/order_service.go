package services

import (
	"errors"
	"fmt"

	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"github.com/Ah-ugo/Amber-Foods-backend/repository"
	"gorm.io/gorm"
)

// Pricing applied at checkout. Unit prices come from the catalog at
// order time, not from the cart.
const (
	DeliveryFee = 5.00
	TaxRate     = 0.075
)

type OrderService struct {
	DB        *gorm.DB
	Orders    *repository.OrderRepository
	Carts     *repository.CartRepository
	Menu      *repository.MenuRepository
	Addresses *repository.AddressRepository
	Users     *repository.UserRepository
}

func NewOrderService(db *gorm.DB, orders *repository.OrderRepository, carts *repository.CartRepository,
	menu *repository.MenuRepository, addresses *repository.AddressRepository, users *repository.UserRepository) *OrderService {
	return &OrderService{DB: db, Orders: orders, Carts: carts, Menu: menu, Addresses: addresses, Users: users}
}

type CreateOrderInput struct {
	CartID              uint   `json:"cartId" binding:"required"`
	DeliveryAddressID   uint   `json:"deliveryAddressId" binding:"required"`
	SpecialInstructions string `json:"specialInstructions"`
}

// CreateFromCart snapshots the cart into an order and empties the cart
// in the same transaction. Every line is re-priced from the current
// catalog, so a price change between add-to-cart and checkout lands in
// the order.
func (s *OrderService) CreateFromCart(userID uint, in *CreateOrderInput) (*entity.Order, error) {
	cart, err := s.Carts.GetCartByIDForUser(in.CartID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("Cart not found")
	}
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, badRequest("Cart is empty")
	}

	if _, err := s.Addresses.GetForUser(in.DeliveryAddressID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Delivery address not found")
		}
		return nil, err
	}

	var (
		items    []entity.OrderItem
		subtotal float64
	)
	for _, line := range cart.Items {
		item, err := s.Menu.GetItemForPricing(line.MenuItemID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(fmt.Sprintf("Menu item not found: %s", line.Name))
		}
		if err != nil {
			return nil, err
		}
		if !item.IsAvailable {
			return nil, badRequest(fmt.Sprintf("Menu item is not available: %s", item.Name))
		}

		lineSubtotal := item.Price * float64(line.Quantity)
		subtotal += lineSubtotal

		snapshot := entity.OrderItem{
			MenuItemID: item.ID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   line.Quantity,
			Subtotal:   lineSubtotal,
		}
		if len(item.Images) > 0 {
			snapshot.ImageURL = item.Images[0].URL
		}
		items = append(items, snapshot)
	}

	tax := subtotal * TaxRate
	order := &entity.Order{
		UserID:              userID,
		DeliveryAddressID:   in.DeliveryAddressID,
		SpecialInstructions: in.SpecialInstructions,
		Subtotal:            subtotal,
		DeliveryFee:         DeliveryFee,
		Tax:                 tax,
		TotalAmount:         subtotal + DeliveryFee + tax,
		Status:              entity.OrderPending,
		PaymentStatus:       entity.PaymentPending,
		DeliveryStatus:      entity.DeliveryNotStarted,
		Items:               items,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Orders.CreateOrder(tx, order); err != nil {
			return err
		}
		return s.Carts.ClearCart(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListForUser(userID uint, status entity.OrderStatus, skip, limit int) ([]entity.Order, error) {
	if status != "" && !status.Valid() {
		return nil, badRequest("Invalid order status")
	}
	return s.Orders.ListOrders(repository.OrderFilter{
		UserID: userID, Status: status, Skip: skip, Limit: limit,
	})
}

// OrderDetail is an order joined with the collaborators a client needs
// to render it.
type OrderDetail struct {
	entity.Order
	DeliveryAddress *entity.Address `json:"deliveryAddress,omitempty"`
	User            *entity.User    `json:"user,omitempty"`
}

func (s *OrderService) Detail(userID, orderID uint) (*OrderDetail, error) {
	order, err := s.Orders.GetOrderForUser(userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("Order not found")
	}
	if err != nil {
		return nil, err
	}
	return s.detail(order)
}

func (s *OrderService) AdminDetail(orderID uint) (*OrderDetail, error) {
	order, err := s.Orders.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("Order not found")
	}
	if err != nil {
		return nil, err
	}
	return s.detail(order)
}

func (s *OrderService) detail(order *entity.Order) (*OrderDetail, error) {
	d := &OrderDetail{Order: *order}
	if addr, err := s.Addresses.GetForUser(order.DeliveryAddressID, order.UserID); err == nil {
		d.DeliveryAddress = addr
	}
	if user, err := s.Users.FindByID(order.UserID); err == nil {
		d.User = user
	}
	return d, nil
}

// Cancel rejects the request once the kitchen has started. The guarded
// update in the repository keeps a concurrent admin transition from
// being overwritten.
func (s *OrderService) Cancel(userID, orderID uint) (*entity.Order, error) {
	if _, err := s.Orders.GetOrderForUser(userID, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Order not found")
		}
		return nil, err
	}

	ok, err := s.Orders.CancelIfCancellable(orderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, badRequest("Order cannot be cancelled at this stage")
	}
	return s.Orders.GetOrder(orderID)
}

func (s *OrderService) AdminList(f repository.OrderFilter) ([]entity.Order, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, badRequest("Invalid order status")
	}
	if f.PaymentStatus != "" && !f.PaymentStatus.Valid() {
		return nil, badRequest("Invalid payment status")
	}
	return s.Orders.ListOrders(f)
}

// AdminSetStatus moves the order to any valid status. Admin
// transitions are unrestricted; only user cancellation is guarded.
func (s *OrderService) AdminSetStatus(orderID uint, status entity.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, badRequest("Invalid order status")
	}
	if _, err := s.Orders.GetOrder(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Order not found")
		}
		return nil, err
	}
	if err := s.Orders.UpdateStatus(orderID, status); err != nil {
		return nil, err
	}
	return s.Orders.GetOrder(orderID)
}
