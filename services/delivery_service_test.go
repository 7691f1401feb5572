package services

import (
	"testing"

	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"github.com/Ah-ugo/Amber-Foods-backend/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDeliveryService(db *gorm.DB) *DeliveryService {
	notes := NewNotificationService(repository.NewNotificationRepository(db), nil)
	return NewDeliveryService(db,
		repository.NewDeliveryRepository(db),
		repository.NewOrderRepository(db),
		notes)
}

func TestDeliveryTracking(t *testing.T) {
	db := newTestDB(t)
	svc := newDeliveryService(db)
	user := seedUser(t, db, "track@test.io")
	order := placeOrder(t, db, user.ID)

	t.Run("untouched order tracks as not started", func(t *testing.T) {
		d, err := svc.Track(user.ID, order.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.DeliveryNotStarted, d.Status)
		assert.Zero(t, d.ID)
	})

	t.Run("status update creates the record and mirrors the order", func(t *testing.T) {
		d, err := svc.UpdateStatus(order.ID, entity.DeliveryPreparing)
		require.NoError(t, err)
		assert.Equal(t, entity.DeliveryPreparing, d.Status)
		assert.Contains(t, d.StatusHistory, entity.DeliveryPreparing)

		var o entity.Order
		require.NoError(t, db.First(&o, order.ID).Error)
		assert.Equal(t, entity.DeliveryPreparing, o.DeliveryStatus)
	})

	t.Run("history accumulates per status", func(t *testing.T) {
		_, err := svc.UpdateStatus(order.ID, entity.DeliveryEnRoute)
		require.NoError(t, err)
		d, err := svc.UpdateStatus(order.ID, entity.DeliveryDelivered)
		require.NoError(t, err)

		assert.Len(t, d.StatusHistory, 3)
		assert.Contains(t, d.StatusHistory, entity.DeliveryEnRoute)
		assert.Contains(t, d.StatusHistory, entity.DeliveryDelivered)
	})

	t.Run("re-entering a status overwrites its timestamp", func(t *testing.T) {
		d, err := svc.UpdateStatus(order.ID, entity.DeliveryEnRoute)
		require.NoError(t, err)
		assert.Len(t, d.StatusHistory, 3)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		_, err := svc.UpdateStatus(order.ID, "TELEPORTED")
		assert.ErrorIs(t, err, ErrBadRequest)
	})

	t.Run("another user's order is not found", func(t *testing.T) {
		other := seedUser(t, db, "track2@test.io")
		_, err := svc.Track(other.ID, order.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeliveryAssignDriver(t *testing.T) {
	db := newTestDB(t)
	svc := newDeliveryService(db)
	user := seedUser(t, db, "driver@test.io")
	order := placeOrder(t, db, user.ID)

	t.Run("first assignment starts the delivery", func(t *testing.T) {
		d, err := svc.AssignDriver(order.ID, "drv-1", "Ada", "0800000001")
		require.NoError(t, err)
		assert.Equal(t, entity.DeliveryAssigned, d.Status)
		assert.Equal(t, "Ada", d.DriverName)
		assert.Contains(t, d.StatusHistory, entity.DeliveryAssigned)

		var o entity.Order
		require.NoError(t, db.First(&o, order.ID).Error)
		assert.Equal(t, entity.DeliveryAssigned, o.DeliveryStatus)
	})

	t.Run("reassignment swaps the driver without touching progression", func(t *testing.T) {
		_, err := svc.UpdateStatus(order.ID, entity.DeliveryEnRoute)
		require.NoError(t, err)

		d, err := svc.AssignDriver(order.ID, "drv-2", "Emeka", "0800000002")
		require.NoError(t, err)
		assert.Equal(t, "Emeka", d.DriverName)
		assert.Equal(t, entity.DeliveryEnRoute, d.Status)
	})
}
