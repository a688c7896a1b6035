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

// Trang thảo luận của một tin nội bộ. Tin external chỉ trả link gốc.
func GetDiscussion(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	newsID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	news, err := services.GetDiscussion(db, newsID)
	if err != nil {
		if errors.Is(err, services.ErrNewsNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tải thảo luận"})
		return
	}

	if news.NewsType == models.NewsExternal {
		c.JSON(http.StatusOK, gin.H{"redirect": news.LinkURL})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"news":  news,
		"posts": services.ThreadPosts(news.ForumPosts),
	})
}

type createPostInput struct {
	Content string `json:"content"`
}

func CreateForumPost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authenticated"})
		return
	}

	newsID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	var input createPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	db := c.MustGet("db").(*gorm.DB)
	post, err := services.CreatePost(db, newsID, userID, input.Content)
	if err != nil {
		respondForumError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"post": gin.H{
			"id":        post.ID,
			"content":   post.Content,
			"username":  post.User.Username,
			"createdAt": post.CreatedAt,
		},
	})
}

type createReplyInput struct {
	ParentID uuid.UUID `json:"parent_id" binding:"required"`
	Content  string    `json:"content"`
}

func CreateForumReply(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authenticated"})
		return
	}

	newsID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	var input createReplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	db := c.MustGet("db").(*gorm.DB)
	reply, err := services.CreateReply(db, newsID, input.ParentID, userID, input.Content)
	if err != nil {
		respondForumError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"post": gin.H{
			"id":        reply.ID,
			"content":   reply.Content,
			"parentId":  reply.ParentID,
			"username":  reply.User.Username,
			"createdAt": reply.CreatedAt,
		},
	})
}

func respondForumError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyContent):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Content cannot be empty"})
	case errors.Is(err, services.ErrNewsNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "News not found"})
	case errors.Is(err, services.ErrExternalNews):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Discussions are only available for internal news"})
	case errors.Is(err, services.ErrPostNotFound), errors.Is(err, services.ErrWrongNews):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Post not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Something went wrong"})
	}
}
