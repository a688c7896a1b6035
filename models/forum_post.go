package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ForumPost struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	NewsID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"news_id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Content   string     `gorm:"size:1000;not null" json:"content"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	News    News        `gorm:"foreignKey:NewsID" json:"news,omitempty"`
	User    User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Replies []ForumPost `gorm:"foreignKey:ParentID" json:"replies,omitempty"`
}

func (p *ForumPost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
