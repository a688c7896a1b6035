package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/animehub-backend/models"
)

// Lỗi có phân loại để controller render message cụ thể
var (
	ErrEmptyContent = errors.New("content cannot be empty")
	ErrNewsNotFound = errors.New("news not found")
	ErrExternalNews = errors.New("forum is only available for internal news")
	ErrPostNotFound = errors.New("post not found")
	ErrWrongNews    = errors.New("parent post belongs to a different news")
)

func internalNews(db *gorm.DB, newsID uuid.UUID) (*models.News, error) {
	var news models.News
	if err := db.First(&news, "id = ?", newsID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	if news.NewsType != models.NewsInternal {
		return nil, ErrExternalNews
	}
	return &news, nil
}

// CreatePost tạo bài thảo luận gốc, chỉ cho news internal.
// Kiểm tra news trước: tin external bị từ chối bất kể nội dung.
func CreatePost(db *gorm.DB, newsID, userID uuid.UUID, content string) (*models.ForumPost, error) {
	if _, err := internalNews(db, newsID); err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	post := models.ForumPost{
		NewsID:  newsID,
		UserID:  userID,
		Content: content,
	}
	if err := db.Create(&post).Error; err != nil {
		return nil, err
	}
	if err := db.Preload("User").First(&post, "id = ?", post.ID).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// CreateReply tạo trả lời, parent phải thuộc cùng news
func CreateReply(db *gorm.DB, newsID, parentPostID, userID uuid.UUID, content string) (*models.ForumPost, error) {
	if _, err := internalNews(db, newsID); err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	var parent models.ForumPost
	if err := db.First(&parent, "id = ?", parentPostID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if parent.NewsID != newsID {
		return nil, ErrWrongNews
	}

	reply := models.ForumPost{
		NewsID:   newsID,
		UserID:   userID,
		Content:  content,
		ParentID: &parentPostID,
	}
	if err := db.Create(&reply).Error; err != nil {
		return nil, err
	}
	if err := db.Preload("User").First(&reply, "id = ?", reply.ID).Error; err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetDiscussion load news kèm toàn bộ post (cũ trước, để dựng thread)
func GetDiscussion(db *gorm.DB, newsID uuid.UUID) (*models.News, error) {
	var news models.News
	err := db.
		Preload("ForumPosts", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("forum_posts.created_at ASC")
		}).
		Preload("ForumPosts.User").
		First(&news, "id = ?", newsID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return &news, nil
}

type ForumPostView struct {
	ID        uuid.UUID        `json:"id"`
	NewsID    uuid.UUID        `json:"news_id"`
	UserID    uuid.UUID        `json:"user_id"`
	Username  string           `json:"username"`
	Content   string           `json:"content"`
	ParentID  *uuid.UUID       `json:"parent_id,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	Replies   []*ForumPostView `json:"replies"`
}

// ThreadPosts dựng cây trả lời từ danh sách phẳng.
// Duyệt lặp qua map, không đệ quy: model cho phép lồng sâu tùy ý.
func ThreadPosts(posts []models.ForumPost) []*ForumPostView {
	nodes := make(map[uuid.UUID]*ForumPostView, len(posts))
	ordered := make([]*ForumPostView, 0, len(posts))

	for _, p := range posts {
		view := &ForumPostView{
			ID:        p.ID,
			NewsID:    p.NewsID,
			UserID:    p.UserID,
			Username:  p.User.Username,
			Content:   p.Content,
			ParentID:  p.ParentID,
			CreatedAt: p.CreatedAt,
			Replies:   []*ForumPostView{},
		}
		nodes[p.ID] = view
		ordered = append(ordered, view)
	}

	roots := make([]*ForumPostView, 0, len(ordered))
	for _, view := range ordered {
		if view.ParentID != nil {
			if parent, ok := nodes[*view.ParentID]; ok {
				parent.Replies = append(parent.Replies, view)
				continue
			}
		}
		roots = append(roots, view)
	}
	return roots
}
