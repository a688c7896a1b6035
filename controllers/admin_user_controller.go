package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/animehub-backend/config"
	"github.com/vnkhanh/animehub-backend/models"
)

func AdminListUsers(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var users []models.User
	if err := db.Order("created_at ASC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tải danh sách người dùng"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func AdminPromoteUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	db := c.MustGet("db").(*gorm.DB)

	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy người dùng"})
		return
	}

	if user.Role == models.RoleAdmin {
		c.JSON(http.StatusOK, gin.H{"message": "Người dùng đã là admin"})
		return
	}

	if err := db.Model(&user).Update("role", models.RoleAdmin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể cập nhật quyền"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đã cấp quyền admin"})
}

func AdminDemoteUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	db := c.MustGet("db").(*gorm.DB)

	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy người dùng"})
		return
	}

	// Admin gốc không bao giờ bị hạ quyền
	if user.Email == config.AdminEmail() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot demote the main admin account"})
		return
	}

	if err := db.Model(&user).Update("role", models.RoleUser).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể cập nhật quyền"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đã gỡ quyền admin"})
}

// Xóa user kèm toàn bộ dữ liệu phụ thuộc.
// Forum post của user xử lý như khi xóa news: gỡ parent_id của
// các reply trỏ tới post sắp xóa rồi mới xóa.
func AdminDeleteUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	db := c.MustGet("db").(*gorm.DB)

	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy người dùng"})
		return
	}

	if user.Email == config.AdminEmail() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot delete the main admin account"})
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Watchlist{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Bookmark{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.PasswordReset{}).Error; err != nil {
			return err
		}

		var posts []models.ForumPost
		if err := tx.Where("user_id = ?", userID).
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

		return tx.Delete(&user).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xóa người dùng"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Xóa người dùng thành công"})
}
