package utils

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/vnkhanh/animehub-backend/models"
)

// CleanupExpiredTokens xóa các token đặt lại mật khẩu đã hết hạn hoặc đã dùng
func CleanupExpiredTokens(db *gorm.DB) {
	result := db.Where("expires_at < ? OR used = ?", time.Now(), true).
		Delete(&models.PasswordReset{})

	if result.Error != nil {
		log.Printf("Lỗi khi xóa password reset tokens: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Đã xóa %d password reset tokens hết hạn/đã dùng", result.RowsAffected)
	}
}

// StartCleanupJob chạy cleanup định kỳ mỗi 6 giờ
func StartCleanupJob(db *gorm.DB) {
	CleanupExpiredTokens(db)

	ticker := time.NewTicker(6 * time.Hour)
	go func() {
		defer ticker.Stop()
		for range ticker.C {
			CleanupExpiredTokens(db)
		}
	}()

	log.Println("Cleanup job đã được khởi động (chạy mỗi 6 giờ)")
}
