package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/vnkhanh/animehub-backend/models"
	"github.com/vnkhanh/animehub-backend/services"
	"github.com/vnkhanh/animehub-backend/utils"
)

type AnimeInput struct {
	Title        string      `json:"title" binding:"required"`
	Slug         string      `json:"slug"`
	Synopsis     string      `json:"synopsis"`
	Year         string      `json:"year"`
	Rating       float64     `json:"rating"`
	Status       string      `json:"status"`
	EpisodeCount string      `json:"episode_count"`
	Studio       string      `json:"studio"`
	CoverURL     string      `json:"cover_url"`
	PosterURL    string      `json:"poster_url"`
	TrailerURL   string      `json:"trailer_url"`
	TmdbID       *int        `json:"tmdb_id"`
	GenreIDs     []uuid.UUID `json:"genre_ids"`
}

func AdminListAnimes(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var animes []models.Anime
	if err := db.Preload("Genres").Order("title ASC").Find(&animes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tải danh sách anime"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"animes": animes})
}

func AdminCreateAnime(c *gin.Context) {
	var input AnimeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := c.MustGet("db").(*gorm.DB)

	animeSlug := input.Slug
	if animeSlug == "" {
		animeSlug = slug.Make(input.Title)
	}

	var existing models.Anime
	if err := db.Where("slug = ?", animeSlug).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Slug đã tồn tại"})
		return
	}

	anime := models.Anime{
		Title:        input.Title,
		Slug:         animeSlug,
		Synopsis:     input.Synopsis,
		Year:         input.Year,
		Rating:       input.Rating,
		Status:       input.Status,
		EpisodeCount: input.EpisodeCount,
		Studio:       input.Studio,
		CoverURL:     input.CoverURL,
		PosterURL:    input.PosterURL,
		TrailerURL:   input.TrailerURL,
		TmdbID:       input.TmdbID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&anime).Error; err != nil {
			return err
		}
		if len(input.GenreIDs) > 0 {
			var genres []models.Genre
			if err := tx.Where("id IN ?", input.GenreIDs).Find(&genres).Error; err != nil {
				return err
			}
			return tx.Model(&anime).Association("Genres").Replace(genres)
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo anime"})
		return
	}

	db.Preload("Genres").First(&anime, "id = ?", anime.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "Tạo anime thành công", "anime": anime})
}

func AdminUpdateAnime(c *gin.Context) {
	animeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var input AnimeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := c.MustGet("db").(*gorm.DB)

	var anime models.Anime
	if err := db.First(&anime, "id = ?", animeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy anime"})
		return
	}

	animeSlug := input.Slug
	if animeSlug == "" {
		animeSlug = slug.Make(input.Title)
	}
	if animeSlug != anime.Slug {
		var existing models.Anime
		if err := db.Where("slug = ? AND id <> ?", animeSlug, animeID).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Slug đã tồn tại"})
			return
		}
	}

	anime.Title = input.Title
	anime.Slug = animeSlug
	anime.Synopsis = input.Synopsis
	anime.Year = input.Year
	anime.Rating = input.Rating
	anime.Status = input.Status
	anime.EpisodeCount = input.EpisodeCount
	anime.Studio = input.Studio
	anime.CoverURL = input.CoverURL
	anime.PosterURL = input.PosterURL
	anime.TrailerURL = input.TrailerURL
	anime.TmdbID = input.TmdbID

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&anime).Error; err != nil {
			return err
		}
		var genres []models.Genre
		if len(input.GenreIDs) > 0 {
			if err := tx.Where("id IN ?", input.GenreIDs).Find(&genres).Error; err != nil {
				return err
			}
		}
		return tx.Model(&anime).Association("Genres").Replace(genres)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể cập nhật anime"})
		return
	}

	db.Preload("Genres").First(&anime, "id = ?", anime.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Cập nhật anime thành công", "anime": anime})
}

// Xóa anime kèm toàn bộ dữ liệu phụ thuộc trong 1 transaction
func AdminDeleteAnime(c *gin.Context) {
	animeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	db := c.MustGet("db").(*gorm.DB)

	var anime models.Anime
	if err := db.First(&anime, "id = ?", animeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy anime"})
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&anime).Association("Genres").Clear(); err != nil {
			return err
		}
		if err := tx.Where("anime_id = ?", animeID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("anime_id = ?", animeID).Delete(&models.Watchlist{}).Error; err != nil {
			return err
		}
		if err := tx.Where("anime_id = ?", animeID).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("anime_id = ?", animeID).Delete(&models.Bookmark{}).Error; err != nil {
			return err
		}
		if err := tx.Where("anime_id = ?", animeID).Delete(&models.Episode{}).Error; err != nil {
			return err
		}
		// related_animes có 2 chiều, xóa cả 2
		if err := tx.Where("anime_id = ? OR related_anime_id = ?", animeID, animeID).
			Delete(&models.RelatedAnime{}).Error; err != nil {
			return err
		}
		return tx.Delete(&anime).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xóa anime"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Xóa anime thành công"})
}

func AdminUploadAnimeImage(c *gin.Context) {
	animeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	db := c.MustGet("db").(*gorm.DB)
	var anime models.Anime
	if err := db.First(&anime, "id = ?", animeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy anime"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu file ảnh"})
		return
	}

	// kind = poster | cover, mặc định poster
	kind := c.DefaultPostForm("kind", "poster")

	publicURL, err := utils.UploadImageToSupabase(fileHeader, kind+"_"+animeID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload ảnh thất bại"})
		return
	}

	column := "poster_url"
	if kind == "cover" {
		column = "cover_url"
	}
	if err := db.Model(&anime).Update(column, publicURL).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể cập nhật ảnh"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": publicURL})
}

// Tra cứu TMDB để admin chọn tmdb_id khi tạo anime
func AdminSearchTmdb(tmdb *services.TmdbService) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")
		if query == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu từ khoá tìm kiếm"})
			return
		}

		result, err := tmdb.SearchAnime(query, c.Query("language"))
		if err != nil || result == nil {
			c.JSON(http.StatusOK, gin.H{"results": []interface{}{}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": result.Results})
	}
}
