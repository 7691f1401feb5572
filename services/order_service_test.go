package services

import (
	"testing"

	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"github.com/Ah-ugo/Amber-Foods-backend/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewMenuRepository(db),
		repository.NewAddressRepository(db),
		repository.NewUserRepository(db))
}

func TestOrderCreateFromCart(t *testing.T) {
	db := newTestDB(t)
	carts := newCartService(db)
	orders := newOrderService(db)

	user := seedUser(t, db, "order@test.io")
	addr := seedAddress(t, db, user.ID, true)
	rice := seedItem(t, db, "Jollof Rice", 10.00, true)
	soup := seedItem(t, db, "Pepper Soup", 5.00, true)

	t.Run("prices fee and tax from the snapshot subtotal", func(t *testing.T) {
		_, err := carts.AddItem(user.ID, rice.ID, 2)
		require.NoError(t, err)
		cart, err := carts.AddItem(user.ID, soup.ID, 1)
		require.NoError(t, err)

		order, err := orders.CreateFromCart(user.ID, &CreateOrderInput{
			CartID:            cart.ID,
			DeliveryAddressID: addr.ID,
		})
		require.NoError(t, err)

		assert.Equal(t, 25.00, order.Subtotal)
		assert.Equal(t, 5.00, order.DeliveryFee)
		assert.InDelta(t, 1.875, order.Tax, 1e-9)
		assert.InDelta(t, 31.875, order.TotalAmount, 1e-9)
		assert.Equal(t, entity.OrderPending, order.Status)
		assert.Equal(t, entity.PaymentPending, order.PaymentStatus)
		require.Len(t, order.Items, 2)

		// The cart was emptied in the same transaction.
		got, err := carts.Get(user.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Items)
		assert.Equal(t, 0.00, got.Total)
	})

	t.Run("re-prices lines from the current catalog", func(t *testing.T) {
		cart, err := carts.AddItem(user.ID, rice.ID, 1)
		require.NoError(t, err)
		require.Equal(t, 10.00, cart.Total)

		require.NoError(t, db.Model(rice).Update("price", 14.00).Error)

		order, err := orders.CreateFromCart(user.ID, &CreateOrderInput{
			CartID:            cart.ID,
			DeliveryAddressID: addr.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, 14.00, order.Subtotal)
		assert.Equal(t, 14.00, order.Items[0].Price)
	})

	t.Run("rejects an empty cart", func(t *testing.T) {
		cart, err := carts.Get(user.ID)
		require.NoError(t, err)
		_, err = orders.CreateFromCart(user.ID, &CreateOrderInput{
			CartID:            cart.ID,
			DeliveryAddressID: addr.ID,
		})
		assert.ErrorIs(t, err, ErrBadRequest)
	})

	t.Run("rejects an unknown address", func(t *testing.T) {
		cart, err := carts.AddItem(user.ID, soup.ID, 1)
		require.NoError(t, err)
		_, err = orders.CreateFromCart(user.ID, &CreateOrderInput{
			CartID:            cart.ID,
			DeliveryAddressID: 9999,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects when an item went unavailable", func(t *testing.T) {
		require.NoError(t, db.Model(soup).Update("is_available", false).Error)
		cart, err := carts.Get(user.ID)
		require.NoError(t, err)
		require.NotEmpty(t, cart.Items)

		_, err = orders.CreateFromCart(user.ID, &CreateOrderInput{
			CartID:            cart.ID,
			DeliveryAddressID: addr.ID,
		})
		assert.ErrorIs(t, err, ErrBadRequest)
	})
}

func TestOrderCancel(t *testing.T) {
	db := newTestDB(t)
	carts := newCartService(db)
	orders := newOrderService(db)

	user := seedUser(t, db, "cancel@test.io")
	addr := seedAddress(t, db, user.ID, true)
	item := seedItem(t, db, "Moi Moi", 3.00, true)

	place := func(t *testing.T) *entity.Order {
		t.Helper()
		cart, err := carts.AddItem(user.ID, item.ID, 1)
		require.NoError(t, err)
		order, err := orders.CreateFromCart(user.ID, &CreateOrderInput{
			CartID:            cart.ID,
			DeliveryAddressID: addr.ID,
		})
		require.NoError(t, err)
		return order
	}

	t.Run("pending order cancels", func(t *testing.T) {
		order := place(t)
		got, err := orders.Cancel(user.ID, order.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderCancelled, got.Status)
	})

	t.Run("confirmed order cancels", func(t *testing.T) {
		order := place(t)
		_, err := orders.AdminSetStatus(order.ID, entity.OrderConfirmed)
		require.NoError(t, err)
		got, err := orders.Cancel(user.ID, order.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderCancelled, got.Status)
	})

	t.Run("preparing order does not cancel", func(t *testing.T) {
		order := place(t)
		_, err := orders.AdminSetStatus(order.ID, entity.OrderPreparing)
		require.NoError(t, err)

		_, err = orders.Cancel(user.ID, order.ID)
		require.ErrorIs(t, err, ErrBadRequest)
		assert.EqualError(t, err, "Order cannot be cancelled at this stage")

		got, err := orders.AdminDetail(order.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderPreparing, got.Status)
	})

	t.Run("another user's order is not found", func(t *testing.T) {
		order := place(t)
		other := seedUser(t, db, "stranger@test.io")
		_, err := orders.Cancel(other.ID, order.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestOrderAdminSetStatus(t *testing.T) {
	db := newTestDB(t)
	carts := newCartService(db)
	orders := newOrderService(db)

	user := seedUser(t, db, "admin-status@test.io")
	addr := seedAddress(t, db, user.ID, true)
	item := seedItem(t, db, "Chin Chin", 2.00, true)

	cart, err := carts.AddItem(user.ID, item.ID, 1)
	require.NoError(t, err)
	order, err := orders.CreateFromCart(user.ID, &CreateOrderInput{
		CartID:            cart.ID,
		DeliveryAddressID: addr.ID,
	})
	require.NoError(t, err)

	t.Run("moves through the progression", func(t *testing.T) {
		for _, status := range []entity.OrderStatus{
			entity.OrderConfirmed, entity.OrderPreparing, entity.OrderReady,
			entity.OrderEnRoute, entity.OrderDelivered,
		} {
			got, err := orders.AdminSetStatus(order.ID, status)
			require.NoError(t, err)
			assert.Equal(t, status, got.Status)
		}
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		_, err := orders.AdminSetStatus(order.ID, "SHIPPED")
		assert.ErrorIs(t, err, ErrBadRequest)
	})

	t.Run("unknown order is not found", func(t *testing.T) {
		_, err := orders.AdminSetStatus(9999, entity.OrderConfirmed)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
