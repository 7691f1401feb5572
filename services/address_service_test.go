package services

import (
	"testing"

	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"github.com/Ah-ugo/Amber-Foods-backend/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAddressService(db *gorm.DB) *AddressService {
	return NewAddressService(db, repository.NewAddressRepository(db))
}

func countDefaults(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&entity.Address{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Count(&count).Error)
	return count
}

func TestAddressDefaultInvariant(t *testing.T) {
	db := newTestDB(t)
	svc := newAddressService(db)
	user := seedUser(t, db, "addr@test.io")

	home := &AddressInput{Line1: "1 Home Road", City: "Amber City", State: "Amber", Country: "NG", Label: "Home"}
	work := &AddressInput{Line1: "2 Work Close", City: "Amber City", State: "Amber", Country: "NG", Label: "Work", IsDefault: true}

	t.Run("first address becomes default regardless of flag", func(t *testing.T) {
		a, err := svc.Create(user.ID, home)
		require.NoError(t, err)
		assert.True(t, a.IsDefault)
	})

	t.Run("new default unsets the old one", func(t *testing.T) {
		a, err := svc.Create(user.ID, work)
		require.NoError(t, err)
		assert.True(t, a.IsDefault)
		assert.EqualValues(t, 1, countDefaults(t, db, user.ID))
	})

	t.Run("set-default moves the flag", func(t *testing.T) {
		addrs, err := svc.List(user.ID)
		require.NoError(t, err)
		require.Len(t, addrs, 2)

		got, err := svc.SetDefault(user.ID, addrs[0].ID)
		require.NoError(t, err)
		assert.True(t, got.IsDefault)
		assert.EqualValues(t, 1, countDefaults(t, db, user.ID))
	})

	t.Run("deleting the default promotes another", func(t *testing.T) {
		addrs, err := svc.List(user.ID)
		require.NoError(t, err)

		var def *entity.Address
		for i := range addrs {
			if addrs[i].IsDefault {
				def = &addrs[i]
			}
		}
		require.NotNil(t, def)

		require.NoError(t, svc.Delete(user.ID, def.ID))
		assert.EqualValues(t, 1, countDefaults(t, db, user.ID))
	})

	t.Run("deleting the last address leaves none", func(t *testing.T) {
		addrs, err := svc.List(user.ID)
		require.NoError(t, err)
		require.Len(t, addrs, 1)

		require.NoError(t, svc.Delete(user.ID, addrs[0].ID))
		assert.EqualValues(t, 0, countDefaults(t, db, user.ID))
	})

	t.Run("another user's address is not found", func(t *testing.T) {
		other := seedUser(t, db, "addr2@test.io")
		a, err := svc.Create(other.ID, home)
		require.NoError(t, err)
		_, err = svc.Get(user.ID, a.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
