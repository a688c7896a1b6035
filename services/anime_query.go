package services

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/animehub-backend/models"
)

// Mỗi trang browse cố định 12 item
const BrowsePageSize = 12

type BrowseFilter struct {
	Genre  string // so khớp chính xác tên thể loại, không phân biệt hoa thường
	Status string
	Year   string // substring; "older" = không chứa "202" và "2019"
	Sort   string // rating | year | alphabetical, mặc định rating
	Page   int    // 1-based
}

// AnimeView là anime kèm trạng thái của user đang xem
type AnimeView struct {
	models.Anime
	IsInFavorites  bool       `json:"is_in_favorites"`
	IsInWatchlist  bool       `json:"is_in_watchlist"`
	IsBookmarked   bool       `json:"is_bookmarked"`
	HasEpisodes    bool       `json:"has_episodes"`
	FirstEpisodeID *uuid.UUID `json:"first_episode_id,omitempty"`
}

func genreSubquery(db *gorm.DB, where string, arg interface{}) *gorm.DB {
	return db.Model(&models.AnimeGenre{}).
		Select("anime_genres.anime_id").
		Joins("JOIN genres ON genres.id = anime_genres.genre_id").
		Where(where, arg)
}

// BrowseAnimes lọc + sắp xếp + phân trang catalog.
// Trả về slice của trang, tổng số item khớp filter và cờ hasMore.
func BrowseAnimes(db *gorm.DB, f BrowseFilter) ([]models.Anime, int64, bool, error) {
	if f.Page < 1 {
		f.Page = 1
	}

	query := db.Model(&models.Anime{})

	if f.Genre != "" {
		query = query.Where("animes.id IN (?)",
			genreSubquery(db, "LOWER(genres.name) = ?", strings.ToLower(f.Genre)))
	}

	if f.Status != "" {
		query = query.Where("LOWER(status) = ?", strings.ToLower(f.Status))
	}

	if f.Year != "" {
		if f.Year == "older" {
			// Quy ước: cũ hơn 2019
			query = query.Where("year NOT LIKE ? AND year NOT LIKE ?", "%202%", "%2019%")
		} else {
			query = query.Where("year LIKE ?", "%"+f.Year+"%")
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, false, err
	}

	switch strings.ToLower(f.Sort) {
	case "year":
		query = query.Order("year DESC")
	case "alphabetical":
		query = query.Order("title ASC")
	case "rating", "popularity":
		query = query.Order("rating DESC")
	default:
		// Mặc định và sort key lạ đều về rating
		query = query.Order("rating DESC")
	}

	var animes []models.Anime
	err := query.
		Offset((f.Page - 1) * BrowsePageSize).
		Limit(BrowsePageSize).
		Preload("Genres").
		Find(&animes).Error
	if err != nil {
		return nil, 0, false, err
	}

	hasMore := int64(f.Page*BrowsePageSize) < total
	return animes, total, hasMore, nil
}

// SearchAnimes tìm theo title, synopsis hoặc tên thể loại (substring, OR).
// Search là entry point riêng, không kết hợp với các filter của Browse.
func SearchAnimes(db *gorm.DB, query string) ([]models.Anime, error) {
	like := "%" + strings.ToLower(query) + "%"

	var animes []models.Anime
	err := db.Model(&models.Anime{}).
		Where("LOWER(title) LIKE ? OR LOWER(synopsis) LIKE ? OR animes.id IN (?)",
			like, like, genreSubquery(db, "LOWER(genres.name) LIKE ?", like)).
		Preload("Genres").
		Find(&animes).Error
	return animes, err
}

// TopRatedAnimes cho trang chủ
func TopRatedAnimes(db *gorm.DB, limit int) ([]models.Anime, error) {
	var animes []models.Anime
	err := db.Order("rating DESC").Limit(limit).Preload("Genres").Find(&animes).Error
	return animes, err
}

// BuildAnimeViews gắn trạng thái user + tập đầu tiên cho cả trang
// bằng query theo batch, không query từng item.
func BuildAnimeViews(db *gorm.DB, animes []models.Anime, userID *uuid.UUID) ([]AnimeView, error) {
	views := make([]AnimeView, 0, len(animes))
	if len(animes) == 0 {
		return views, nil
	}

	animeIDs := make([]uuid.UUID, 0, len(animes))
	for _, a := range animes {
		animeIDs = append(animeIDs, a.ID)
	}

	// Tập có số nhỏ nhất của từng anime
	var episodes []models.Episode
	if err := db.Select("id", "anime_id", "episode_number").
		Where("anime_id IN ?", animeIDs).
		Order("episode_number ASC").
		Find(&episodes).Error; err != nil {
		return nil, err
	}
	firstEpisode := make(map[uuid.UUID]uuid.UUID)
	for _, ep := range episodes {
		if _, ok := firstEpisode[ep.AnimeID]; !ok {
			firstEpisode[ep.AnimeID] = ep.ID
		}
	}

	favoriteSet := make(map[uuid.UUID]bool)
	watchlistSet := make(map[uuid.UUID]bool)
	bookmarkSet := make(map[uuid.UUID]bool)

	if userID != nil {
		var ids []uuid.UUID
		if err := db.Model(&models.Favorite{}).
			Where("user_id = ? AND anime_id IN ?", *userID, animeIDs).
			Pluck("anime_id", &ids).Error; err != nil {
			return nil, err
		}
		for _, id := range ids {
			favoriteSet[id] = true
		}

		ids = nil
		if err := db.Model(&models.Watchlist{}).
			Where("user_id = ? AND anime_id IN ?", *userID, animeIDs).
			Pluck("anime_id", &ids).Error; err != nil {
			return nil, err
		}
		for _, id := range ids {
			watchlistSet[id] = true
		}

		ids = nil
		if err := db.Model(&models.Bookmark{}).
			Where("user_id = ? AND anime_id IN ?", *userID, animeIDs).
			Pluck("anime_id", &ids).Error; err != nil {
			return nil, err
		}
		for _, id := range ids {
			bookmarkSet[id] = true
		}
	}

	for _, a := range animes {
		view := AnimeView{
			Anime:         a,
			IsInFavorites: favoriteSet[a.ID],
			IsInWatchlist: watchlistSet[a.ID],
			IsBookmarked:  bookmarkSet[a.ID],
		}
		if epID, ok := firstEpisode[a.ID]; ok {
			view.HasEpisodes = true
			id := epID
			view.FirstEpisodeID = &id
		}
		views = append(views, view)
	}
	return views, nil
}
