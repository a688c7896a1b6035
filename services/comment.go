package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/animehub-backend/models"
)

var (
	ErrEmptyComment    = errors.New("comment cannot be empty")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("not the comment owner")
)

// AddComment lưu bình luận đã trim, trả về kèm thông tin người viết
func AddComment(db *gorm.DB, userID, animeID uuid.UUID, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyComment
	}

	comment := models.Comment{
		AnimeID: animeID,
		UserID:  userID,
		Content: content,
	}
	if err := db.Create(&comment).Error; err != nil {
		return nil, err
	}

	if err := db.Preload("User").First(&comment, "id = ?", comment.ID).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListComments trả về bình luận mới nhất trước, kèm tổng số và cờ hasMore
func ListComments(db *gorm.DB, animeID uuid.UUID, page, pageSize int) ([]models.Comment, int64, bool, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	var total int64
	if err := db.Model(&models.Comment{}).
		Where("anime_id = ?", animeID).
		Count(&total).Error; err != nil {
		return nil, 0, false, err
	}

	var comments []models.Comment
	err := db.Where("anime_id = ?", animeID).
		Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&comments).Error
	if err != nil {
		return nil, 0, false, err
	}

	hasMore := int64(page*pageSize) < total
	return comments, total, hasMore, nil
}

// DeleteComment xóa bình luận của chính mình, admin xóa được của mọi người.
// Trả về anime id để controller phát sự kiện realtime.
func DeleteComment(db *gorm.DB, commentID, userID uuid.UUID, isAdmin bool) (uuid.UUID, error) {
	var comment models.Comment
	if err := db.First(&comment, "id = ?", commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, ErrCommentNotFound
		}
		return uuid.Nil, err
	}

	if comment.UserID != userID && !isAdmin {
		return uuid.Nil, ErrNotCommentOwner
	}

	if err := db.Delete(&comment).Error; err != nil {
		return uuid.Nil, err
	}
	return comment.AnimeID, nil
}

func CountComments(db *gorm.DB, animeID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&models.Comment{}).Where("anime_id = ?", animeID).Count(&count).Error
	return count, err
}
