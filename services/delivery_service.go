package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"github.com/Ah-ugo/Amber-Foods-backend/repository"
	"gorm.io/gorm"
)

// Messages shown to the customer for each admin-set delivery status.
var deliveryMessages = map[string]string{
	entity.DeliveryPreparing: "Your order is being prepared",
	entity.DeliveryEnRoute:   "Your order is on the way",
	entity.DeliveryArrived:   "Your delivery has arrived at your location",
	entity.DeliveryDelivered: "Your order has been delivered",
}

type DeliveryService struct {
	DB            *gorm.DB
	Deliveries    *repository.DeliveryRepository
	Orders        *repository.OrderRepository
	Notifications *NotificationService
}

func NewDeliveryService(db *gorm.DB, deliveries *repository.DeliveryRepository,
	orders *repository.OrderRepository, notifications *NotificationService) *DeliveryService {
	return &DeliveryService{DB: db, Deliveries: deliveries, Orders: orders, Notifications: notifications}
}

// Track returns the delivery record for an order the caller owns. An
// order whose delivery has not been touched yet gets a synthetic
// NOT_STARTED record; nothing is persisted for it.
func (s *DeliveryService) Track(userID, orderID uint) (*entity.Delivery, error) {
	order, err := s.Orders.GetOrderForUser(userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("Order not found")
	}
	if err != nil {
		return nil, err
	}

	d, err := s.Deliveries.GetByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return &entity.Delivery{
			OrderID: orderID,
			UserID:  order.UserID,
			Status:  entity.DeliveryNotStarted,
			Message: "Delivery has not started yet",
		}, nil
	}
	return d, nil
}

// DeliveryEstimate is a coarse, fixed window. There is no live driver
// telemetry to derive a better one from.
type DeliveryEstimate struct {
	MinMinutes int    `json:"minMinutes"`
	MaxMinutes int    `json:"maxMinutes"`
	Message    string `json:"message"`
}

func (s *DeliveryService) Estimate() DeliveryEstimate {
	return DeliveryEstimate{
		MinMinutes: 30,
		MaxMinutes: 45,
		Message:    "Estimated delivery time is 30-45 minutes",
	}
}

// UpdateStatus moves an order's delivery to the given status, creating
// the delivery record on first use. StatusHistory keeps the time each
// status was last entered; re-entering a status overwrites its key.
func (s *DeliveryService) UpdateStatus(orderID uint, status string) (*entity.Delivery, error) {
	message, ok := deliveryMessages[status]
	if !ok {
		return nil, badRequest("Invalid delivery status")
	}

	order, err := s.Orders.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("Order not found")
	}
	if err != nil {
		return nil, err
	}

	d, err := s.Deliveries.GetByOrderID(orderID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if d == nil {
			d = &entity.Delivery{
				OrderID:         orderID,
				UserID:          order.UserID,
				Status:          status,
				Message:         message,
				StatusUpdatedAt: now,
				StatusHistory:   map[string]time.Time{status: now},
			}
			if err := s.Deliveries.Create(tx, d); err != nil {
				return err
			}
		} else {
			d.Status = status
			d.Message = message
			d.StatusUpdatedAt = now
			if d.StatusHistory == nil {
				d.StatusHistory = map[string]time.Time{}
			}
			d.StatusHistory[status] = now
			if err := s.Deliveries.Save(tx, d); err != nil {
				return err
			}
		}
		return s.Orders.UpdateDeliveryStatus(tx, orderID, status)
	})
	if err != nil {
		return nil, err
	}

	go s.Notifications.Notify(order.UserID, "Delivery Update", message,
		entity.NotificationOrder, &orderID)
	return d, nil
}

// AssignDriver sets the driver on the order's delivery. First
// assignment creates the record in ASSIGNED; reassignment only swaps
// the driver fields and leaves the progression alone.
func (s *DeliveryService) AssignDriver(orderID uint, driverID, name, phone string) (*entity.Delivery, error) {
	order, err := s.Orders.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("Order not found")
	}
	if err != nil {
		return nil, err
	}

	d, err := s.Deliveries.GetByOrderID(orderID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if d == nil {
			d = &entity.Delivery{
				OrderID:         orderID,
				UserID:          order.UserID,
				Status:          entity.DeliveryAssigned,
				Message:         "A driver has been assigned to your order",
				DriverID:        driverID,
				DriverName:      name,
				DriverPhone:     phone,
				StatusUpdatedAt: now,
				StatusHistory:   map[string]time.Time{entity.DeliveryAssigned: now},
			}
			if err := s.Deliveries.Create(tx, d); err != nil {
				return err
			}
			return s.Orders.UpdateDeliveryStatus(tx, orderID, entity.DeliveryAssigned)
		}
		d.DriverID = driverID
		d.DriverName = name
		d.DriverPhone = phone
		return s.Deliveries.Save(tx, d)
	})
	if err != nil {
		return nil, err
	}

	go s.Notifications.Notify(order.UserID, "Driver Assigned",
		fmt.Sprintf("%s is delivering your order #%d.", name, orderID),
		entity.NotificationOrder, &orderID)
	return d, nil
}
