package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Genre struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:100;not null;uniqueIndex" json:"name"`

	Animes []Anime `gorm:"many2many:anime_genres" json:"animes,omitempty"`
}

func (g *Genre) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// Bảng nối anime-genre, khóa chính tổ hợp
type AnimeGenre struct {
	AnimeID uuid.UUID `gorm:"type:uuid;primaryKey" json:"anime_id"`
	GenreID uuid.UUID `gorm:"type:uuid;primaryKey" json:"genre_id"`

	Anime Anime `gorm:"constraint:OnDelete:CASCADE;" json:"anime,omitempty"`
	Genre Genre `gorm:"constraint:OnDelete:CASCADE;" json:"genre,omitempty"`
}
