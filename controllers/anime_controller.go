package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/animehub-backend/models"
	"github.com/vnkhanh/animehub-backend/services"
)

// optionalUserID trả về nil khi request không đăng nhập
func optionalUserID(c *gin.Context) *uuid.UUID {
	if id, ok := currentUserID(c); ok {
		return &id
	}
	return nil
}

// Trang chủ: top anime theo rating kèm trạng thái danh sách của user
func GetHome(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	animes, err := services.TopRatedAnimes(db, 6)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tải danh sách anime"})
		return
	}

	views, err := services.BuildAnimeViews(db, animes, optionalUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tải danh sách anime"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"animes": views})
}

// Browse với filter genre/status/year + sort + phân trang
func BrowseAnimes(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	filter := services.BrowseFilter{
		Genre:  c.Query("genre"),
		Status: c.Query("status"),
		Year:   c.Query("year"),
		Sort:   c.Query("sort"),
		Page:   page,
	}

	animes, total, hasMore, err := services.BrowseAnimes(db, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tải danh sách anime"})
		return
	}

	views, err := services.BuildAnimeViews(db, animes, optionalUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tải danh sách anime"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"animes":     views,
		"totalCount": total,
		"hasMore":    hasMore,
		"page":       filter.Page,
	})
}

func SearchAnimes(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	query := c.Query("q")
	animes, err := services.SearchAnimes(db, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Tìm kiếm thất bại"})
		return
	}

	views, err := services.BuildAnimeViews(db, animes, optionalUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Tìm kiếm thất bại"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"animes": views, "query": query})
}

// Chi tiết anime theo slug, kèm metadata TMDB (best effort) và anime liên quan
func GetAnimeDetail(tmdb *services.TmdbService) gin.HandlerFunc {
	return func(c *gin.Context) {
		db := c.MustGet("db").(*gorm.DB)
		slug := c.Param("slug")

		var anime models.Anime
		if err := db.Preload("Genres").
			Preload("Episodes", func(tx *gorm.DB) *gorm.DB {
				return tx.Order("episode_number ASC")
			}).
			Where("slug = ?", slug).First(&anime).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy anime"})
			return
		}

		views, err := services.BuildAnimeViews(db, []models.Anime{anime}, optionalUserID(c))
		if err != nil || len(views) == 0 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tải anime"})
			return
		}

		// Anime liên quan (2 chiều, đã seed cả 2 hàng)
		var related []models.Anime
		db.Joins("JOIN related_animes ON related_animes.related_anime_id = animes.id").
			Where("related_animes.anime_id = ?", anime.ID).
			Preload("Genres").
			Find(&related)

		response := gin.H{
			"anime":        views[0],
			"relatedAnime": related,
		}

		// TMDB là best effort: lỗi thì bỏ qua, không làm hỏng trang chi tiết
		if tmdb != nil && anime.TmdbID != nil {
			if details, err := tmdb.GetAnimeDetails(*anime.TmdbID, c.Query("language")); err == nil && details != nil {
				response["tmdbDetails"] = details
			}
			if images, err := tmdb.GetAnimeImages(*anime.TmdbID); err == nil && images != nil {
				response["tmdbImages"] = images
			}
		}

		c.JSON(http.StatusOK, response)
	}
}

func GetEpisodes(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	animeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var episodes []models.Episode
	if err := db.Where("anime_id = ?", animeID).
		Order("episode_number ASC").Find(&episodes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tải danh sách tập"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"episodes": episodes})
}

// Trang xem tập phim: tập hiện tại + danh sách tập của anime đó
func WatchEpisode(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	episodeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var episode models.Episode
	if err := db.First(&episode, "id = ?", episodeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy tập phim"})
		return
	}

	var anime models.Anime
	if err := db.Preload("Genres").First(&anime, "id = ?", episode.AnimeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy anime"})
		return
	}

	var episodes []models.Episode
	db.Where("anime_id = ?", episode.AnimeID).Order("episode_number ASC").Find(&episodes)

	c.JSON(http.StatusOK, gin.H{
		"episode":  episode,
		"anime":    anime,
		"episodes": episodes,
	})
}

func GetGenres(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var genres []models.Genre
	if err := db.Order("name ASC").Find(&genres).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tải thể loại"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"genres": genres})
}
