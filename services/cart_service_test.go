package services

import (
	"testing"

	"github.com/Ah-ugo/Amber-Foods-backend/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func TestCartAddItem(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "cart@test.io")
	item := seedItem(t, db, "Jollof Rice", 10.00, true)

	t.Run("adds a new line", func(t *testing.T) {
		cart, err := svc.AddItem(user.ID, item.ID, 2)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
		assert.Equal(t, 20.00, cart.Items[0].Subtotal)
		assert.Equal(t, 20.00, cart.Total)
	})

	t.Run("re-adding replaces the quantity", func(t *testing.T) {
		cart, err := svc.AddItem(user.ID, item.ID, 3)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 3, cart.Items[0].Quantity)
		assert.Equal(t, 30.00, cart.Total)
	})

	t.Run("rejects unknown item", func(t *testing.T) {
		_, err := svc.AddItem(user.ID, 9999, 1)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects unavailable item", func(t *testing.T) {
		off := seedItem(t, db, "Sold Out Soup", 5.00, false)
		_, err := svc.AddItem(user.ID, off.ID, 1)
		assert.ErrorIs(t, err, ErrBadRequest)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := svc.AddItem(user.ID, item.ID, 0)
		assert.ErrorIs(t, err, ErrBadRequest)
	})
}

func TestCartUpdateItem(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "cart2@test.io")
	item := seedItem(t, db, "Suya", 4.00, true)

	cart, err := svc.AddItem(user.ID, item.ID, 1)
	require.NoError(t, err)
	lineID := cart.Items[0].ID

	t.Run("updates quantity from the stored price", func(t *testing.T) {
		// A catalog price change must not affect lines already in the
		// cart; only checkout re-prices.
		require.NoError(t, db.Model(item).Update("price", 9.00).Error)

		cart, err := svc.UpdateItem(user.ID, lineID, 5)
		require.NoError(t, err)
		assert.Equal(t, 20.00, cart.Items[0].Subtotal)
		assert.Equal(t, 20.00, cart.Total)
	})

	t.Run("unknown line is not found", func(t *testing.T) {
		_, err := svc.UpdateItem(user.ID, 9999, 2)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("another user's cart is not found", func(t *testing.T) {
		other := seedUser(t, db, "other@test.io")
		_, err := svc.UpdateItem(other.ID, lineID, 2)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCartRemoveAndClear(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "cart3@test.io")
	rice := seedItem(t, db, "Fried Rice", 8.00, true)
	soup := seedItem(t, db, "Egusi Soup", 12.00, true)

	cart, err := svc.AddItem(user.ID, rice.ID, 1)
	require.NoError(t, err)
	_, err = svc.AddItem(user.ID, soup.ID, 2)
	require.NoError(t, err)

	t.Run("removing a line re-sums the total", func(t *testing.T) {
		got, err := svc.RemoveItem(user.ID, cart.Items[0].ID)
		require.NoError(t, err)
		require.Len(t, got.Items, 1)
		assert.Equal(t, 24.00, got.Total)
	})

	t.Run("clear empties the cart", func(t *testing.T) {
		got, err := svc.Clear(user.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Items)
		assert.Equal(t, 0.00, got.Total)
	})
}
