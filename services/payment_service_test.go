package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"github.com/Ah-ugo/Amber-Foods-backend/pkg/paystack"
	"github.com/Ah-ugo/Amber-Foods-backend/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// paystackStub fakes the two gateway endpoints. verifyStatus controls
// what the next verify reports.
type paystackStub struct {
	*httptest.Server
	verifyStatus string
}

func newPaystackStub(t *testing.T) *paystackStub {
	t.Helper()
	stub := &paystackStub{verifyStatus: "success"}

	mux := http.NewServeMux()
	mux.HandleFunc("/transaction/initialize", func(w http.ResponseWriter, r *http.Request) {
		var in map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		json.NewEncoder(w).Encode(map[string]any{
			"status":  true,
			"message": "Authorization URL created",
			"data": map[string]any{
				"authorization_url": "https://checkout.test/session",
				"access_code":       "ac_test",
				"reference":         in["reference"],
			},
		})
	})
	mux.HandleFunc("/transaction/verify/", func(w http.ResponseWriter, r *http.Request) {
		ref := strings.TrimPrefix(r.URL.Path, "/transaction/verify/")
		json.NewEncoder(w).Encode(map[string]any{
			"status":  true,
			"message": "Verification successful",
			"data": map[string]any{
				"status":    stub.verifyStatus,
				"reference": ref,
				"amount":    3187,
			},
		})
	})

	stub.Server = httptest.NewServer(mux)
	t.Cleanup(stub.Close)
	return stub
}

func newPaymentService(db *gorm.DB, baseURL string) *PaymentService {
	gateway := paystack.NewClient("sk_test")
	gateway.BaseURL = baseURL
	notes := NewNotificationService(repository.NewNotificationRepository(db), nil)
	return NewPaymentService(db,
		repository.NewPaymentRepository(db),
		repository.NewOrderRepository(db),
		repository.NewUserRepository(db),
		gateway, notes, "http://localhost:8000/api/payments/callback")
}

func placeOrder(t *testing.T, db *gorm.DB, userID uint) *entity.Order {
	t.Helper()
	carts := newCartService(db)
	orders := newOrderService(db)
	addr := seedAddress(t, db, userID, true)
	item := seedItem(t, db, "Meat Pie", 10.00, true)

	cart, err := carts.AddItem(userID, item.ID, 1)
	require.NoError(t, err)
	order, err := orders.CreateFromCart(userID, &CreateOrderInput{
		CartID:            cart.ID,
		DeliveryAddressID: addr.ID,
	})
	require.NoError(t, err)
	return order
}

func TestPaymentInitialize(t *testing.T) {
	db := newTestDB(t)
	stub := newPaystackStub(t)
	svc := newPaymentService(db, stub.URL)

	user := seedUser(t, db, "pay@test.io")
	order := placeOrder(t, db, user.ID)
	ctx := context.Background()

	t.Run("opens a session and records the attempt", func(t *testing.T) {
		payment, err := svc.Initialize(ctx, user.ID, order.ID)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(payment.Reference, "order_"), payment.Reference)
		assert.Equal(t, "https://checkout.test/session", payment.AuthorizationURL)
		assert.Equal(t, entity.PaymentPending, payment.Status)
		assert.Equal(t, order.TotalAmount, payment.Amount)

		var got entity.Order
		require.NoError(t, db.First(&got, order.ID).Error)
		assert.Equal(t, payment.Reference, got.PaymentReference)
		assert.Equal(t, entity.PaymentPending, got.PaymentStatus)
	})

	t.Run("unknown order is not found", func(t *testing.T) {
		_, err := svc.Initialize(ctx, user.ID, 9999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("paid order is rejected", func(t *testing.T) {
		require.NoError(t, db.Model(&entity.Order{}).Where("id = ?", order.ID).
			Update("payment_status", entity.PaymentPaid).Error)
		_, err := svc.Initialize(ctx, user.ID, order.ID)
		require.ErrorIs(t, err, ErrBadRequest)
		assert.EqualError(t, err, "Order is already paid")
	})
}

func TestPaymentVerify(t *testing.T) {
	db := newTestDB(t)
	stub := newPaystackStub(t)
	svc := newPaymentService(db, stub.URL)

	user := seedUser(t, db, "verify@test.io")
	order := placeOrder(t, db, user.ID)
	ctx := context.Background()

	payment, err := svc.Initialize(ctx, user.ID, order.ID)
	require.NoError(t, err)

	t.Run("success marks payment and order paid", func(t *testing.T) {
		got, err := svc.Verify(ctx, user.ID, payment.Reference)
		require.NoError(t, err)
		assert.Equal(t, entity.PaymentPaid, got.Status)
		assert.NotEmpty(t, got.TransactionData)

		var o entity.Order
		require.NoError(t, db.First(&o, order.ID).Error)
		assert.Equal(t, entity.PaymentPaid, o.PaymentStatus)
	})

	t.Run("verification is idempotent", func(t *testing.T) {
		got, err := svc.Verify(ctx, user.ID, payment.Reference)
		require.NoError(t, err)
		assert.Equal(t, entity.PaymentPaid, got.Status)

		var count int64
		require.NoError(t, db.Model(&entity.Payment{}).
			Where("reference = ?", payment.Reference).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("gateway truth overwrites local state", func(t *testing.T) {
		stub.verifyStatus = "failed"
		got, err := svc.Verify(ctx, user.ID, payment.Reference)
		require.NoError(t, err)
		assert.Equal(t, entity.PaymentFailed, got.Status)

		var o entity.Order
		require.NoError(t, db.First(&o, order.ID).Error)
		assert.Equal(t, entity.PaymentFailed, o.PaymentStatus)
	})

	t.Run("another user's reference is not found", func(t *testing.T) {
		other := seedUser(t, db, "verify2@test.io")
		_, err := svc.Verify(ctx, other.ID, payment.Reference)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("callback reconciles without a caller", func(t *testing.T) {
		stub.verifyStatus = "success"
		got, err := svc.HandleCallback(ctx, payment.Reference)
		require.NoError(t, err)
		assert.Equal(t, entity.PaymentPaid, got.Status)
	})

	t.Run("unknown reference is not found", func(t *testing.T) {
		_, err := svc.HandleCallback(ctx, "order_0_deadbeef")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
