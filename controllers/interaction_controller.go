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

type listActionInput struct {
	AnimeID uuid.UUID `json:"anime_id" binding:"required"`
}

var alreadyInListMessage = map[services.ListKind]string{
	services.ListWatchlist: "Already in watchlist",
	services.ListFavorite:  "Already favorited",
	services.ListBookmark:  "Already bookmarked",
}

var notInListMessage = map[services.ListKind]string{
	services.ListWatchlist: "Not in watchlist",
	services.ListFavorite:  "Not in favorites",
	services.ListBookmark:  "Not bookmarked",
}

// addToList xử lý chung cho 3 danh sách, client chỉ cần đọc success/message
func addToList(kind services.ListKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Not authenticated"})
			return
		}

		var input listActionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid request"})
			return
		}

		db := c.MustGet("db").(*gorm.DB)
		if err := services.ToggleOn(db, kind, userID, input.AnimeID); err != nil {
			if errors.Is(err, services.ErrAlreadyInList) {
				c.JSON(http.StatusOK, gin.H{"success": false, "message": alreadyInListMessage[kind]})
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Something went wrong"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func removeFromList(kind services.ListKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Not authenticated"})
			return
		}

		var input listActionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid request"})
			return
		}

		db := c.MustGet("db").(*gorm.DB)
		if err := services.ToggleOff(db, kind, userID, input.AnimeID); err != nil {
			if errors.Is(err, services.ErrNotInList) {
				c.JSON(http.StatusOK, gin.H{"success": false, "message": notInListMessage[kind]})
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Something went wrong"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

var (
	AddToWatchlist      = addToList(services.ListWatchlist)
	RemoveFromWatchlist = removeFromList(services.ListWatchlist)
	AddToFavorites      = addToList(services.ListFavorite)
	RemoveFromFavorites = removeFromList(services.ListFavorite)
	AddBookmark         = addToList(services.ListBookmark)
	RemoveBookmark      = removeFromList(services.ListBookmark)
)

// listAnimesFor trả về anime trong danh sách của user, mới thêm lên trước
func listAnimesFor(db *gorm.DB, joinTable string, userID uuid.UUID) ([]models.Anime, error) {
	var animes []models.Anime
	err := db.Joins("JOIN "+joinTable+" ON "+joinTable+".anime_id = animes.id").
		Where(joinTable+".user_id = ?", userID).
		Order(joinTable + ".added_at DESC").
		Preload("Genres").
		Find(&animes).Error
	return animes, err
}

func listHandler(joinTable string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Chưa đăng nhập"})
			return
		}

		db := c.MustGet("db").(*gorm.DB)
		animes, err := listAnimesFor(db, joinTable, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tải danh sách"})
			return
		}

		views, err := services.BuildAnimeViews(db, animes, &userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tải danh sách"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"animes": views})
	}
}

var (
	GetWatchlist = listHandler("watchlists")
	GetFavorites = listHandler("favorites")
	GetBookmarks = listHandler("bookmarks")
)

// Dashboard cá nhân: số lượng từng danh sách + favorites gần nhất
func GetDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Chưa đăng nhập"})
		return
	}

	db := c.MustGet("db").(*gorm.DB)

	var watchlistCount, favoriteCount, bookmarkCount, commentCount int64
	db.Model(&models.Watchlist{}).Where("user_id = ?", userID).Count(&watchlistCount)
	db.Model(&models.Favorite{}).Where("user_id = ?", userID).Count(&favoriteCount)
	db.Model(&models.Bookmark{}).Where("user_id = ?", userID).Count(&bookmarkCount)
	db.Model(&models.Comment{}).Where("user_id = ?", userID).Count(&commentCount)

	var recentFavorites []models.Anime
	db.Joins("JOIN favorites ON favorites.anime_id = animes.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.added_at DESC").
		Limit(4).
		Preload("Genres").
		Find(&recentFavorites)

	c.JSON(http.StatusOK, gin.H{
		"watchlistCount":  watchlistCount,
		"favoriteCount":   favoriteCount,
		"bookmarkCount":   bookmarkCount,
		"commentCount":    commentCount,
		"recentFavorites": recentFavorites,
	})
}
