package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Episode struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	AnimeID       uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_anime_episode_number" json:"anime_id"`
	EpisodeNumber int        `gorm:"not null;uniqueIndex:idx_anime_episode_number" json:"episode_number"`
	Title         string     `gorm:"size:200" json:"title"`
	VideoURL      string     `gorm:"size:500" json:"video_url"`
	AirDate       *time.Time `json:"air_date,omitempty"`
	Duration      string     `gorm:"size:10" json:"duration"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`

	Anime Anime `gorm:"foreignKey:AnimeID" json:"anime,omitempty"`
}

func (e *Episode) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
