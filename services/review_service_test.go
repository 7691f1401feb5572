package services

import (
	"testing"

	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"github.com/Ah-ugo/Amber-Foods-backend/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReviewService(db *gorm.DB) *ReviewService {
	return NewReviewService(
		repository.NewReviewRepository(db),
		repository.NewMenuRepository(db),
		repository.NewUserRepository(db))
}

func itemRating(t *testing.T, db *gorm.DB, id uint) (float64, int) {
	t.Helper()
	var item entity.MenuItem
	require.NoError(t, db.First(&item, id).Error)
	return item.AvgRating, item.ReviewCount
}

func TestReviewCreate(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	alice := seedUser(t, db, "alice@test.io")
	bob := seedUser(t, db, "bob@test.io")
	item := seedItem(t, db, "Akara", 2.50, true)

	t.Run("first review sets the aggregate", func(t *testing.T) {
		_, err := svc.Create(alice.ID, &CreateReviewInput{MenuItemID: item.ID, Rating: 4})
		require.NoError(t, err)
		avg, count := itemRating(t, db, item.ID)
		assert.Equal(t, 4.0, avg)
		assert.Equal(t, 1, count)
	})

	t.Run("second reviewer moves the mean", func(t *testing.T) {
		_, err := svc.Create(bob.ID, &CreateReviewInput{MenuItemID: item.ID, Rating: 2})
		require.NoError(t, err)
		avg, count := itemRating(t, db, item.ID)
		assert.Equal(t, 3.0, avg)
		assert.Equal(t, 2, count)
	})

	t.Run("one review per user per item", func(t *testing.T) {
		_, err := svc.Create(alice.ID, &CreateReviewInput{MenuItemID: item.ID, Rating: 5})
		require.ErrorIs(t, err, ErrBadRequest)
		assert.EqualError(t, err, "You have already reviewed this item")
	})

	t.Run("unknown item is not found", func(t *testing.T) {
		_, err := svc.Create(alice.ID, &CreateReviewInput{MenuItemID: 9999, Rating: 3})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestReviewUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	alice := seedUser(t, db, "alice2@test.io")
	bob := seedUser(t, db, "bob2@test.io")
	item := seedItem(t, db, "Puff Puff", 1.50, true)

	review, err := svc.Create(alice.ID, &CreateReviewInput{MenuItemID: item.ID, Rating: 5, Comment: "great"})
	require.NoError(t, err)

	t.Run("rating change recomputes the aggregate", func(t *testing.T) {
		rating := 3
		got, err := svc.Update(alice.ID, review.ID, &UpdateReviewInput{Rating: &rating})
		require.NoError(t, err)
		assert.Equal(t, 3, got.Rating)

		avg, _ := itemRating(t, db, item.ID)
		assert.Equal(t, 3.0, avg)
	})

	t.Run("only the author may update", func(t *testing.T) {
		rating := 1
		_, err := svc.Update(bob.ID, review.ID, &UpdateReviewInput{Rating: &rating})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("only the author or an admin may delete", func(t *testing.T) {
		err := svc.Delete(bob.ID, review.ID, false)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("deleting the last review resets the aggregate", func(t *testing.T) {
		require.NoError(t, svc.Delete(alice.ID, review.ID, false))
		avg, count := itemRating(t, db, item.ID)
		assert.Equal(t, 0.0, avg)
		assert.Equal(t, 0, count)
	})
}
