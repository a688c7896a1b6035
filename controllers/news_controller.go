package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/animehub-backend/services"
)

// Trang tin tức: tối đa 10 tin mới nhất
func GetNews(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	news, err := services.ListNews(db, 10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tải tin tức"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"news": news})
}

func GetNewsDetail(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	newsID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	news, err := services.GetNews(db, newsID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"news": news})
}
