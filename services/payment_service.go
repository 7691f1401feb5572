package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"github.com/Ah-ugo/Amber-Foods-backend/pkg/paystack"
	"github.com/Ah-ugo/Amber-Foods-backend/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentService drives the gateway lifecycle: initialize a checkout
// session, then reconcile the outcome via verify or the redirect
// callback. Reconciliation is idempotent; verifying the same reference
// twice rewrites the same rows to the same state.
type PaymentService struct {
	DB            *gorm.DB
	Payments      *repository.PaymentRepository
	Orders        *repository.OrderRepository
	Users         *repository.UserRepository
	Gateway       *paystack.Client
	Notifications *NotificationService
	CallbackURL   string
}

func NewPaymentService(db *gorm.DB, payments *repository.PaymentRepository, orders *repository.OrderRepository,
	users *repository.UserRepository, gateway *paystack.Client, notifications *NotificationService, callbackURL string) *PaymentService {
	return &PaymentService{
		DB: db, Payments: payments, Orders: orders, Users: users,
		Gateway: gateway, Notifications: notifications, CallbackURL: callbackURL,
	}
}

// Initialize opens a gateway session for an unpaid order and records
// the attempt. The reference embeds the order id so support staff can
// trace a transaction from either side.
func (s *PaymentService) Initialize(ctx context.Context, userID, orderID uint) (*entity.Payment, error) {
	order, err := s.Orders.GetOrderForUser(userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("Order not found")
	}
	if err != nil {
		return nil, err
	}
	if order.PaymentStatus == entity.PaymentPaid {
		return nil, badRequest("Order is already paid")
	}

	user, err := s.Users.FindByID(userID)
	if err != nil {
		return nil, err
	}

	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	reference := fmt.Sprintf("order_%d_%s", orderID, token)

	data, err := s.Gateway.Initialize(ctx, &paystack.InitializeRequest{
		Email:       user.Email,
		Amount:      int64(math.Round(order.TotalAmount * 100)),
		Reference:   reference,
		CallbackURL: s.CallbackURL,
		Metadata: map[string]any{
			"order_id": order.ID,
			"user_id":  userID,
		},
	})
	if err != nil {
		return nil, upstream(err)
	}

	payment := &entity.Payment{
		OrderID:          order.ID,
		UserID:           userID,
		Amount:           order.TotalAmount,
		Reference:        reference,
		Status:           entity.PaymentPending,
		AuthorizationURL: data.AuthorizationURL,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Payments.Create(tx, payment); err != nil {
			return err
		}
		return s.Orders.UpdatePaymentState(tx, order.ID, map[string]any{
			"payment_reference": reference,
			"payment_status":    entity.PaymentPending,
		})
	})
	if err != nil {
		return nil, err
	}

	go s.Notifications.Notify(userID, "Payment Initiated",
		fmt.Sprintf("Payment for order #%d has been initiated.", order.ID),
		entity.NotificationOrder, &order.ID)
	return payment, nil
}

// Verify reconciles a payment the caller owns.
func (s *PaymentService) Verify(ctx context.Context, userID uint, reference string) (*entity.Payment, error) {
	if _, err := s.Payments.GetByReferenceForUser(reference, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Payment not found")
		}
		return nil, err
	}
	return s.reconcile(ctx, reference)
}

// HandleCallback reconciles the reference Paystack redirects back
// with. The redirect is unauthenticated, so it resolves the owner from
// the payment row.
func (s *PaymentService) HandleCallback(ctx context.Context, reference string) (*entity.Payment, error) {
	if _, err := s.Payments.GetByReference(reference); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Payment not found")
		}
		return nil, err
	}
	return s.reconcile(ctx, reference)
}

func (s *PaymentService) GetForOrder(userID, orderID uint) (*entity.Payment, error) {
	if _, err := s.Orders.GetOrderForUser(userID, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Order not found")
		}
		return nil, err
	}
	payment, err := s.Payments.GetByOrderID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("No payment found for this order")
	}
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// reconcile asks the gateway for the transaction's real state and
// mirrors it onto the payment and its order in one transaction. The
// gateway is the source of truth; local state is always overwritten.
func (s *PaymentService) reconcile(ctx context.Context, reference string) (*entity.Payment, error) {
	payment, err := s.Payments.GetByReference(reference)
	if err != nil {
		return nil, err
	}

	data, err := s.Gateway.Verify(ctx, reference)
	if err != nil {
		return nil, upstream(err)
	}

	status := entity.PaymentFailed
	if data.Success() {
		status = entity.PaymentPaid
	}
	payment.Status = status
	payment.TransactionData = data.Raw

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Payments.Save(tx, payment); err != nil {
			return err
		}
		return s.Orders.UpdatePaymentState(tx, payment.OrderID, map[string]any{
			"payment_status": status,
		})
	})
	if err != nil {
		return nil, err
	}

	orderID := payment.OrderID
	if status == entity.PaymentPaid {
		go s.Notifications.Notify(payment.UserID, "Payment Successful",
			fmt.Sprintf("Your payment for order #%d was successful.", orderID),
			entity.NotificationOrder, &orderID)
	} else {
		go s.Notifications.Notify(payment.UserID, "Payment Failed",
			fmt.Sprintf("Your payment for order #%d failed. Please try again.", orderID),
			entity.NotificationOrder, &orderID)
	}
	return payment, nil
}
