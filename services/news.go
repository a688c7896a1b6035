package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/animehub-backend/models"
)

// ListNews trả về tin mới nhất trước
func ListNews(db *gorm.DB, limit int) ([]models.News, error) {
	var news []models.News
	query := db.Order("published_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&news).Error
	return news, err
}

func GetNews(db *gorm.DB, id uuid.UUID) (*models.News, error) {
	var news models.News
	if err := db.First(&news, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return &news, nil
}

// DeleteNews xóa news và toàn bộ forum post của nó.
// Thứ tự bắt buộc vì bảng forum_posts tự tham chiếu: với từng post,
// gỡ parent_id của các post con trước, rồi mới xóa post (mới nhất trước),
// cuối cùng xóa news.
func DeleteNews(db *gorm.DB, id uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var news models.News
		if err := tx.First(&news, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNewsNotFound
			}
			return err
		}

		var posts []models.ForumPost
		if err := tx.Where("news_id = ?", id).
			Order("created_at DESC").
			Find(&posts).Error; err != nil {
			return err
		}

		for _, post := range posts {
			if err := tx.Model(&models.ForumPost{}).
				Where("parent_id = ?", post.ID).
				Update("parent_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.ForumPost{}, "id = ?", post.ID).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&news).Error
	})
}
