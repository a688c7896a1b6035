package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/animehub-backend/models"
	"github.com/vnkhanh/animehub-backend/services"
)

func TestToggleOnIsIdempotentPerList(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "miku")
	anime := createTestAnime(t, db, "One Piece", "1999-Present", 9.1, "Ongoing")

	kinds := []services.ListKind{
		services.ListWatchlist,
		services.ListFavorite,
		services.ListBookmark,
	}
	for _, kind := range kinds {
		require.NoError(t, services.ToggleOn(db, kind, user.ID, anime.ID))

		err := services.ToggleOn(db, kind, user.ID, anime.ID)
		assert.ErrorIs(t, err, services.ErrAlreadyInList, "kind=%s", kind)
	}

	// Mỗi danh sách đúng 1 dòng
	var count int64
	db.Model(&models.Watchlist{}).Count(&count)
	assert.Equal(t, int64(1), count)
	db.Model(&models.Favorite{}).Count(&count)
	assert.Equal(t, int64(1), count)
	db.Model(&models.Bookmark{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestToggleOffAbsentEntry(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "miku")
	anime := createTestAnime(t, db, "One Piece", "1999-Present", 9.1, "Ongoing")

	err := services.ToggleOff(db, services.ListWatchlist, user.ID, anime.ID)
	assert.ErrorIs(t, err, services.ErrNotInList)
}

func TestToggleRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "miku")
	anime := createTestAnime(t, db, "One Piece", "1999-Present", 9.1, "Ongoing")

	require.NoError(t, services.ToggleOn(db, services.ListFavorite, user.ID, anime.ID))
	require.NoError(t, services.ToggleOff(db, services.ListFavorite, user.ID, anime.ID))

	var count int64
	db.Model(&models.Favorite{}).Count(&count)
	assert.Equal(t, int64(0), count)

	// Sau khi gỡ thì thêm lại được
	require.NoError(t, services.ToggleOn(db, services.ListFavorite, user.ID, anime.ID))
}

func TestListsAreIndependent(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "miku")
	anime := createTestAnime(t, db, "One Piece", "1999-Present", 9.1, "Ongoing")

	require.NoError(t, services.ToggleOn(db, services.ListWatchlist, user.ID, anime.ID))

	// Watchlist không ảnh hưởng favorites/bookmarks
	err := services.ToggleOff(db, services.ListFavorite, user.ID, anime.ID)
	assert.ErrorIs(t, err, services.ErrNotInList)
	err = services.ToggleOff(db, services.ListBookmark, user.ID, anime.ID)
	assert.ErrorIs(t, err, services.ErrNotInList)
}
