package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/animehub-backend/models"
	"github.com/vnkhanh/animehub-backend/services"
)

type NewsInput struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	ImageURL string `json:"image_url"`
	NewsType string `json:"news_type" binding:"required,oneof=internal external"`
	LinkURL  string `json:"link_url"`
}

func AdminListNews(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	news, err := services.ListNews(db, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tải tin tức"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"news": news})
}

func AdminCreateNews(c *gin.Context) {
	var input NewsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Tin external bắt buộc có link gốc
	if input.NewsType == string(models.NewsExternal) && input.LinkURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tin external phải có link_url"})
		return
	}

	db := c.MustGet("db").(*gorm.DB)

	news := models.News{
		Title:    input.Title,
		Content:  input.Content,
		Author:   input.Author,
		ImageURL: input.ImageURL,
		NewsType: models.NewsType(input.NewsType),
		LinkURL:  input.LinkURL,
	}
	if err := db.Create(&news).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo tin"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Tạo tin thành công", "news": news})
}

func AdminUpdateNews(c *gin.Context) {
	newsID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var input NewsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.NewsType == string(models.NewsExternal) && input.LinkURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tin external phải có link_url"})
		return
	}

	db := c.MustGet("db").(*gorm.DB)

	var news models.News
	if err := db.First(&news, "id = ?", newsID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}

	news.Title = input.Title
	news.Content = input.Content
	news.Author = input.Author
	news.ImageURL = input.ImageURL
	news.NewsType = models.NewsType(input.NewsType)
	news.LinkURL = input.LinkURL

	if err := db.Save(&news).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể cập nhật tin"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cập nhật tin thành công", "news": news})
}

func AdminDeleteNews(c *gin.Context) {
	newsID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	db := c.MustGet("db").(*gorm.DB)

	if err := services.DeleteNews(db, newsID); err != nil {
		if errors.Is(err, services.ErrNewsNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xóa tin"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Xóa tin thành công"})
}
