package services_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/animehub-backend/models"
	"github.com/vnkhanh/animehub-backend/services"
)

func TestListNewsNewestFirstWithLimit(t *testing.T) {
	db := setupTestDB(t)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		news := models.News{
			Title:       "Tin số " + string(rune('A'+i)),
			NewsType:    models.NewsInternal,
			PublishedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, db.Create(&news).Error)
	}

	news, err := services.ListNews(db, 10)
	require.NoError(t, err)
	require.Len(t, news, 10)

	for i := 1; i < len(news); i++ {
		assert.False(t, news[i-1].PublishedAt.Before(news[i].PublishedAt))
	}
}

func TestDeleteNewsRemovesWholeThread(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "miku")
	news := createTestNews(t, db, "Tin sẽ xóa", models.NewsInternal)
	keep := createTestNews(t, db, "Tin giữ lại", models.NewsInternal)

	parent, err := services.CreatePost(db, news.ID, user.ID, "bài gốc")
	require.NoError(t, err)
	_, err = services.CreateReply(db, news.ID, parent.ID, user.ID, "trả lời 1")
	require.NoError(t, err)
	_, err = services.CreateReply(db, news.ID, parent.ID, user.ID, "trả lời 2")
	require.NoError(t, err)

	keptPost, err := services.CreatePost(db, keep.ID, user.ID, "bài ở tin khác")
	require.NoError(t, err)

	require.NoError(t, services.DeleteNews(db, news.ID))

	var count int64
	db.Model(&models.ForumPost{}).Where("news_id = ?", news.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	// Không còn post nào trỏ tới parent đã xóa
	db.Model(&models.ForumPost{}).Where("parent_id = ?", parent.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	// Tin khác và post của nó không bị ảnh hưởng
	var kept models.ForumPost
	require.NoError(t, db.First(&kept, "id = ?", keptPost.ID).Error)
	require.NoError(t, db.First(&models.News{}, "id = ?", keep.ID).Error)

	err = db.First(&models.News{}, "id = ?", news.ID).Error
	assert.Error(t, err)
}

func TestDeleteNewsNotFound(t *testing.T) {
	db := setupTestDB(t)

	err := services.DeleteNews(db, uuid.New())
	assert.ErrorIs(t, err, services.ErrNewsNotFound)
}
