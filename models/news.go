package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsType string

const (
	NewsExternal NewsType = "external" // trỏ ra link ngoài, không có forum
	NewsInternal NewsType = "internal" // mở thảo luận trong app
)

type News struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Content     string    `gorm:"type:text" json:"content"`
	Author      string    `gorm:"size:100" json:"author"`
	ImageURL    string    `gorm:"size:500" json:"image_url"`
	NewsType    NewsType  `gorm:"type:varchar(20);not null;default:'internal'" json:"news_type"`
	LinkURL     string    `gorm:"size:1000" json:"link_url"`
	PublishedAt time.Time `gorm:"autoCreateTime" json:"published_at"`

	ForumPosts []ForumPost `gorm:"foreignKey:NewsID" json:"forum_posts,omitempty"`
}

func (n *News) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
