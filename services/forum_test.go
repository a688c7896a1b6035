package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/animehub-backend/models"
	"github.com/vnkhanh/animehub-backend/services"
)

func TestCreatePostOnExternalNews(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "miku")
	news := createTestNews(t, db, "Tin ngoài", models.NewsExternal)

	// Tin external bị chặn kể cả khi nội dung hợp lệ lẫn khi để trống
	_, err := services.CreatePost(db, news.ID, user.ID, "nội dung hợp lệ")
	assert.ErrorIs(t, err, services.ErrExternalNews)

	_, err = services.CreatePost(db, news.ID, user.ID, "   ")
	assert.ErrorIs(t, err, services.ErrExternalNews)
}

func TestCreatePostBlankContent(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "miku")
	news := createTestNews(t, db, "Tin nội bộ", models.NewsInternal)

	_, err := services.CreatePost(db, news.ID, user.ID, "  \t ")
	assert.ErrorIs(t, err, services.ErrEmptyContent)
}

func TestCreatePostNewsNotFound(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "miku")

	_, err := services.CreatePost(db, uuid.New(), user.ID, "nội dung")
	assert.ErrorIs(t, err, services.ErrNewsNotFound)
}

func TestCreateReplyParentChecks(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "miku")
	news := createTestNews(t, db, "Tin A", models.NewsInternal)
	otherNews := createTestNews(t, db, "Tin B", models.NewsInternal)

	post, err := services.CreatePost(db, news.ID, user.ID, "bài gốc")
	require.NoError(t, err)

	// Parent không tồn tại
	_, err = services.CreateReply(db, news.ID, uuid.New(), user.ID, "trả lời")
	assert.ErrorIs(t, err, services.ErrPostNotFound)

	// Parent thuộc news khác
	_, err = services.CreateReply(db, otherNews.ID, post.ID, user.ID, "trả lời")
	assert.ErrorIs(t, err, services.ErrWrongNews)

	// Hợp lệ
	reply, err := services.CreateReply(db, news.ID, post.ID, user.ID, "  trả lời  ")
	require.NoError(t, err)
	assert.Equal(t, "trả lời", reply.Content)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, post.ID, *reply.ParentID)
}

func TestThreadPostsBuildsNestedTree(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "miku")
	news := createTestNews(t, db, "Tin nội bộ", models.NewsInternal)

	root, err := services.CreatePost(db, news.ID, user.ID, "gốc")
	require.NoError(t, err)
	level1, err := services.CreateReply(db, news.ID, root.ID, user.ID, "tầng 1")
	require.NoError(t, err)
	level2, err := services.CreateReply(db, news.ID, level1.ID, user.ID, "tầng 2")
	require.NoError(t, err)
	_, err = services.CreateReply(db, news.ID, level2.ID, user.ID, "tầng 3")
	require.NoError(t, err)
	sibling, err := services.CreatePost(db, news.ID, user.ID, "gốc thứ hai")
	require.NoError(t, err)

	loaded, err := services.GetDiscussion(db, news.ID)
	require.NoError(t, err)

	tree := services.ThreadPosts(loaded.ForumPosts)
	require.Len(t, tree, 2)

	assert.Equal(t, root.ID, tree[0].ID)
	assert.Equal(t, sibling.ID, tree[1].ID)
	assert.Equal(t, "miku", tree[0].Username)

	require.Len(t, tree[0].Replies, 1)
	require.Len(t, tree[0].Replies[0].Replies, 1)
	require.Len(t, tree[0].Replies[0].Replies[0].Replies, 1)
	assert.Equal(t, "tầng 3", tree[0].Replies[0].Replies[0].Replies[0].Content)
	assert.Empty(t, tree[1].Replies)
}

func TestGetDiscussionNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.GetDiscussion(db, uuid.New())
	assert.ErrorIs(t, err, services.ErrNewsNotFound)
}
