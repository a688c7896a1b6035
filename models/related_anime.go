package models

import "github.com/google/uuid"

// Liên kết anime liên quan, lưu 2 dòng có hướng cho 1 cặp
type RelatedAnime struct {
	AnimeID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"anime_id"`
	RelatedAnimeID uuid.UUID `gorm:"type:uuid;primaryKey" json:"related_anime_id"`

	Anime   Anime `gorm:"foreignKey:AnimeID;constraint:OnDelete:CASCADE;" json:"anime,omitempty"`
	Related Anime `gorm:"foreignKey:RelatedAnimeID;constraint:OnDelete:CASCADE;" json:"related,omitempty"`
}
