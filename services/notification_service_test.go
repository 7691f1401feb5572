package services

import (
	"testing"

	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"github.com/Ah-ugo/Amber-Foods-backend/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPusher struct {
	pushed []*entity.Notification
}

func (p *recordingPusher) Push(userID uint, n *entity.Notification) {
	p.pushed = append(p.pushed, n)
}

func TestNotifications(t *testing.T) {
	db := newTestDB(t)
	pusher := &recordingPusher{}
	svc := NewNotificationService(repository.NewNotificationRepository(db), pusher)
	user := seedUser(t, db, "notes@test.io")

	t.Run("create stores and pushes", func(t *testing.T) {
		orderID := uint(7)
		err := svc.Create(&entity.Notification{
			UserID:  user.ID,
			Title:   "Payment Successful",
			Message: "Your payment for order #7 was successful.",
			Type:    entity.NotificationOrder,
			OrderID: &orderID,
		})
		require.NoError(t, err)
		require.Len(t, pusher.pushed, 1)
		assert.Equal(t, "Payment Successful", pusher.pushed[0].Title)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		err := svc.Create(&entity.Notification{UserID: user.ID, Title: "x", Type: "pigeon"})
		assert.ErrorIs(t, err, ErrBadRequest)
	})

	t.Run("list filters by type and read state", func(t *testing.T) {
		notes, err := svc.ListForUser(user.ID, "", nil, 0, 100)
		require.NoError(t, err)
		require.Len(t, notes, 1)

		unread := false
		filtered, err := svc.ListForUser(user.ID, entity.NotificationOrder, &unread, 0, 100)
		require.NoError(t, err)
		assert.Len(t, filtered, 1)

		none, err := svc.ListForUser(user.ID, entity.NotificationPromotion, nil, 0, 100)
		require.NoError(t, err)
		assert.Empty(t, none)

		_, err = svc.ListForUser(user.ID, "pigeon", nil, 0, 100)
		assert.ErrorIs(t, err, ErrBadRequest)
	})

	t.Run("mark read is scoped to the owner", func(t *testing.T) {
		notes, err := svc.ListForUser(user.ID, "", nil, 0, 100)
		require.NoError(t, err)

		other := seedUser(t, db, "notes2@test.io")
		_, err = svc.MarkRead(other.ID, notes[0].ID)
		assert.ErrorIs(t, err, ErrNotFound)

		got, err := svc.MarkRead(user.ID, notes[0].ID)
		require.NoError(t, err)
		assert.True(t, got.IsRead)

		read := true
		filtered, err := svc.ListForUser(user.ID, "", &read, 0, 100)
		require.NoError(t, err)
		assert.Len(t, filtered, 1)
	})
}
