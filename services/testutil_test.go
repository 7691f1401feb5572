package services

import (
	"fmt"
	"testing"

	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database. Single connection so
// every query sees the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.MenuItem{}, &entity.MenuItemImage{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Payment{},
		&entity.Delivery{},
		&entity.Review{},
		&entity.Notification{},
		&entity.Address{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{
		Email:    email,
		Password: string(hashed),
		FullName: "Test User",
		IsActive: true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedItem(t *testing.T, db *gorm.DB, name string, price float64, available bool) *entity.MenuItem {
	t.Helper()
	item := &entity.MenuItem{
		Name:        name,
		Price:       price,
		IsAvailable: available,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func seedAddress(t *testing.T, db *gorm.DB, userID uint, isDefault bool) *entity.Address {
	t.Helper()
	a := &entity.Address{
		UserID:    userID,
		Line1:     fmt.Sprintf("%d Test Street", userID),
		City:      "Amber City",
		State:     "Amber",
		Country:   "NG",
		IsDefault: isDefault,
	}
	require.NoError(t, db.Create(a).Error)
	return a
}
