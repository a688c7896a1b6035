package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/animehub-backend/models"
	"github.com/vnkhanh/animehub-backend/services"
)

func TestAddCommentRejectsBlank(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "miku")
	anime := createTestAnime(t, db, "One Piece", "1999-Present", 9.1, "Ongoing")

	for _, content := range []string{"", "   ", "\t\n  "} {
		_, err := services.AddComment(db, user.ID, anime.ID, content)
		assert.ErrorIs(t, err, services.ErrEmptyComment)
	}

	var count int64
	db.Model(&models.Comment{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestAddCommentTrimsAndLoadsAuthor(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "miku")
	anime := createTestAnime(t, db, "One Piece", "1999-Present", 9.1, "Ongoing")

	comment, err := services.AddComment(db, user.ID, anime.ID, "  tuyệt vời!  ")
	require.NoError(t, err)

	assert.Equal(t, "tuyệt vời!", comment.Content)
	assert.Equal(t, "miku", comment.User.Username)
	assert.Equal(t, anime.ID, comment.AnimeID)
}

func TestListCommentsNewestFirstWithPaging(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "miku")
	anime := createTestAnime(t, db, "One Piece", "1999-Present", 9.1, "Ongoing")

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 13; i++ {
		comment := models.Comment{
			AnimeID:   anime.ID,
			UserID:    user.ID,
			Content:   fmt.Sprintf("bình luận %02d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(&comment).Error)
	}

	// page/pageSize <= 0 dùng mặc định 1/10
	page1, total, hasMore, err := services.ListComments(db, anime.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, page1, 10)
	assert.Equal(t, int64(13), total)
	assert.True(t, hasMore)
	assert.Equal(t, "bình luận 12", page1[0].Content)

	for i := 1; i < len(page1); i++ {
		assert.False(t, page1[i-1].CreatedAt.Before(page1[i].CreatedAt))
	}

	page2, _, hasMore, err := services.ListComments(db, anime.ID, 2, 10)
	require.NoError(t, err)
	assert.Len(t, page2, 3)
	assert.False(t, hasMore)
	assert.Equal(t, "bình luận 00", page2[len(page2)-1].Content)
}

func TestDeleteCommentOwnership(t *testing.T) {
	db := setupTestDB(t)

	author := createTestUser(t, db, "miku")
	stranger := createTestUser(t, db, "rin")
	anime := createTestAnime(t, db, "One Piece", "1999-Present", 9.1, "Ongoing")

	comment, err := services.AddComment(db, author.ID, anime.ID, "bình luận")
	require.NoError(t, err)

	// Người khác không xóa được
	_, err = services.DeleteComment(db, comment.ID, stranger.ID, false)
	assert.ErrorIs(t, err, services.ErrNotCommentOwner)

	// Admin thì được
	animeID, err := services.DeleteComment(db, comment.ID, stranger.ID, true)
	require.NoError(t, err)
	assert.Equal(t, anime.ID, animeID)

	_, err = services.DeleteComment(db, comment.ID, author.ID, false)
	assert.ErrorIs(t, err, services.ErrCommentNotFound)
}

func TestCountComments(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "miku")
	anime := createTestAnime(t, db, "One Piece", "1999-Present", 9.1, "Ongoing")
	other := createTestAnime(t, db, "Demon Slayer", "2019-2022", 8.7, "Completed")

	for i := 0; i < 3; i++ {
		_, err := services.AddComment(db, user.ID, anime.ID, fmt.Sprintf("c%d", i))
		require.NoError(t, err)
	}
	_, err := services.AddComment(db, user.ID, other.ID, "khác")
	require.NoError(t, err)

	count, err := services.CountComments(db, anime.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
