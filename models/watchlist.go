package models

import (
	"time"

	"github.com/google/uuid"
)

// Khóa chính tổ hợp chặn trùng (user, anime) ngay ở store
type Watchlist struct {
	UserID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	AnimeID uuid.UUID `gorm:"type:uuid;primaryKey" json:"anime_id"`
	AddedAt time.Time `gorm:"autoCreateTime" json:"added_at"`

	User  User  `gorm:"constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	Anime Anime `gorm:"constraint:OnDelete:CASCADE;" json:"anime,omitempty"`
}
