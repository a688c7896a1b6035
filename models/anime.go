package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Anime struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Slug         string    `gorm:"size:255;uniqueIndex" json:"slug"`
	Synopsis     string    `gorm:"type:text" json:"synopsis"`
	Year         string    `gorm:"size:20" json:"year"`
	Rating       float64   `gorm:"type:numeric(3,1)" json:"rating"`
	Status       string    `gorm:"size:50" json:"status"` // Ongoing | Completed (free text)
	EpisodeCount string    `gorm:"size:20" json:"episode_count"`
	Studio       string    `gorm:"size:100" json:"studio"`
	CoverURL     string    `gorm:"size:500" json:"cover_url"`
	PosterURL    string    `gorm:"size:500" json:"poster_url"`
	TrailerURL   string    `gorm:"size:500" json:"trailer_url"`
	TmdbID       *int      `json:"tmdb_id,omitempty"`

	// Quan hệ
	Genres   []Genre        `gorm:"many2many:anime_genres" json:"genres,omitempty"`
	Episodes []Episode      `gorm:"foreignKey:AnimeID;constraint:OnDelete:CASCADE;" json:"episodes,omitempty"`
	Related  []RelatedAnime `gorm:"foreignKey:AnimeID;constraint:OnDelete:CASCADE;" json:"related,omitempty"`
}

// Sinh ID ở tầng ứng dụng để chạy được trên cả postgres lẫn sqlite
func (a *Anime) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
