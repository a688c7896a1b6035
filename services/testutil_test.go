package services_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vnkhanh/animehub-backend/config"
	"github.com/vnkhanh/animehub-backend/models"
)

// setupTestDB mở sqlite in-memory riêng cho từng test và migrate schema thật
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed-password",
		Role:     models.RoleUser,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestAnime(t *testing.T, db *gorm.DB, title, year string, rating float64, status string, genreNames ...string) models.Anime {
	t.Helper()

	anime := models.Anime{
		ID:     uuid.New(),
		Title:  title,
		Slug:   strings.ToLower(strings.ReplaceAll(title, " ", "-")),
		Year:   year,
		Rating: rating,
		Status: status,
	}
	require.NoError(t, db.Create(&anime).Error)

	for _, name := range genreNames {
		var genre models.Genre
		if err := db.Where("name = ?", name).First(&genre).Error; err != nil {
			genre = models.Genre{Name: name}
			require.NoError(t, db.Create(&genre).Error)
		}
		require.NoError(t, db.Create(&models.AnimeGenre{
			AnimeID: anime.ID,
			GenreID: genre.ID,
		}).Error)
	}
	return anime
}

func createTestNews(t *testing.T, db *gorm.DB, title string, newsType models.NewsType) models.News {
	t.Helper()

	news := models.News{
		Title:    title,
		Content:  "nội dung " + title,
		NewsType: newsType,
	}
	if newsType == models.NewsExternal {
		news.LinkURL = "https://example.com/" + strings.ToLower(title)
	}
	require.NoError(t, db.Create(&news).Error)
	return news
}
