package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/animehub-backend/models"
)

type ListKind string

const (
	ListWatchlist ListKind = "watchlist"
	ListFavorite  ListKind = "favorite"
	ListBookmark  ListKind = "bookmark"
)

var (
	ErrAlreadyInList = errors.New("already in list")
	ErrNotInList     = errors.New("not in list")
)

func listRecord(kind ListKind, userID, animeID uuid.UUID) (interface{}, error) {
	switch kind {
	case ListWatchlist:
		return &models.Watchlist{UserID: userID, AnimeID: animeID}, nil
	case ListFavorite:
		return &models.Favorite{UserID: userID, AnimeID: animeID}, nil
	case ListBookmark:
		return &models.Bookmark{UserID: userID, AnimeID: animeID}, nil
	}
	return nil, fmt.Errorf("loại danh sách không hợp lệ: %s", kind)
}

// ToggleOn thêm (user, anime) vào danh sách nếu chưa có.
// Khóa chính tổ hợp ở store chặn insert trùng khi có race,
// lỗi duplicate được trả về như ErrAlreadyInList.
func ToggleOn(db *gorm.DB, kind ListKind, userID, animeID uuid.UUID) error {
	rec, err := listRecord(kind, userID, animeID)
	if err != nil {
		return err
	}

	var count int64
	if err := db.Model(rec).
		Where("user_id = ? AND anime_id = ?", userID, animeID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrAlreadyInList
	}

	if err := db.Create(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyInList
		}
		return err
	}
	return nil
}

// ToggleOff xóa (user, anime) khỏi danh sách, không có thì báo ErrNotInList
func ToggleOff(db *gorm.DB, kind ListKind, userID, animeID uuid.UUID) error {
	rec, err := listRecord(kind, userID, animeID)
	if err != nil {
		return err
	}

	result := db.Where("user_id = ? AND anime_id = ?", userID, animeID).Delete(rec)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotInList
	}
	return nil
}
