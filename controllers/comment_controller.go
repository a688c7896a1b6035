package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/animehub-backend/services"
	"github.com/vnkhanh/animehub-backend/ws"
)

type addCommentInput struct {
	AnimeID uuid.UUID `json:"anime_id" binding:"required"`
	Content string    `json:"content"`
}

func AddComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authenticated"})
		return
	}

	var input addCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	db := c.MustGet("db").(*gorm.DB)
	comment, err := services.AddComment(db, userID, input.AnimeID, input.Content)
	if err != nil {
		if errors.Is(err, services.ErrEmptyComment) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Comment cannot be empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Something went wrong"})
		return
	}

	payload := gin.H{
		"id":        comment.ID,
		"content":   comment.Content,
		"username":  comment.User.Username,
		"avatarUrl": comment.User.AvatarURL,
		"createdAt": comment.CreatedAt,
	}

	// Đẩy realtime cho các client đang mở trang anime này
	ws.SendCommentEvent(input.AnimeID.String(), map[string]interface{}{
		"type":    "new_comment",
		"comment": payload,
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "comment": payload})
}

func DeleteComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authenticated"})
		return
	}

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	role, _ := c.Get("role")
	isAdmin := role == "admin"

	db := c.MustGet("db").(*gorm.DB)
	animeID, err := services.DeleteComment(db, commentID, userID, isAdmin)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCommentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Comment not found"})
		case errors.Is(err, services.ErrNotCommentOwner):
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Not allowed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Something went wrong"})
		}
		return
	}

	ws.SendCommentEvent(animeID.String(), map[string]interface{}{
		"type":      "delete_comment",
		"commentId": commentID,
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func GetComments(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	animeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	comments, total, hasMore, err := services.ListComments(db, animeID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tải bình luận"})
		return
	}

	items := make([]gin.H, 0, len(comments))
	for _, comment := range comments {
		items = append(items, gin.H{
			"id":        comment.ID,
			"content":   comment.Content,
			"username":  comment.User.Username,
			"avatarUrl": comment.User.AvatarURL,
			"createdAt": comment.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"comments":   items,
		"hasMore":    hasMore,
		"totalCount": total,
	})
}

func GetCommentCount(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	animeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	count, err := services.CountComments(db, animeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể đếm bình luận"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
