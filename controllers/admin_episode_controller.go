package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/animehub-backend/models"
)

type EpisodeInput struct {
	AnimeID       uuid.UUID  `json:"anime_id" binding:"required"`
	EpisodeNumber int        `json:"episode_number" binding:"required,min=1"`
	Title         string     `json:"title"`
	VideoURL      string     `json:"video_url"`
	AirDate       *time.Time `json:"air_date"`
	Duration      string     `json:"duration"`
}

func AdminListEpisodes(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	query := db.Order("episode_number ASC")
	if animeID := c.Query("anime_id"); animeID != "" {
		id, err := uuid.Parse(animeID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "anime_id không hợp lệ"})
			return
		}
		query = query.Where("anime_id = ?", id)
	}

	var episodes []models.Episode
	if err := query.Find(&episodes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tải danh sách tập"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"episodes": episodes})
}

func AdminCreateEpisode(c *gin.Context) {
	var input EpisodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := c.MustGet("db").(*gorm.DB)

	var anime models.Anime
	if err := db.First(&anime, "id = ?", input.AnimeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy anime"})
		return
	}

	episode := models.Episode{
		AnimeID:       input.AnimeID,
		EpisodeNumber: input.EpisodeNumber,
		Title:         input.Title,
		VideoURL:      input.VideoURL,
		AirDate:       input.AirDate,
		Duration:      input.Duration,
	}
	if err := db.Create(&episode).Error; err != nil {
		// unique index (anime_id, episode_number)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Số tập đã tồn tại cho anime này"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo tập phim"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Tạo tập phim thành công", "episode": episode})
}

func AdminUpdateEpisode(c *gin.Context) {
	episodeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var input EpisodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := c.MustGet("db").(*gorm.DB)

	var episode models.Episode
	if err := db.First(&episode, "id = ?", episodeID).Error; err != nil {
		// Tập đã bị xóa bởi admin khác cũng rơi vào đây
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy tập phim"})
		return
	}

	episode.EpisodeNumber = input.EpisodeNumber
	episode.Title = input.Title
	episode.VideoURL = input.VideoURL
	episode.AirDate = input.AirDate
	episode.Duration = input.Duration

	if err := db.Save(&episode).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể cập nhật tập phim"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cập nhật tập phim thành công", "episode": episode})
}

func AdminDeleteEpisode(c *gin.Context) {
	episodeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	db := c.MustGet("db").(*gorm.DB)

	result := db.Delete(&models.Episode{}, "id = ?", episodeID)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xóa tập phim"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy tập phim"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Xóa tập phim thành công"})
}
