package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

type User struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Username    string     `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email       string     `gorm:"size:150;not null;uniqueIndex" json:"email"`
	Password    string     `gorm:"type:text;not null" json:"-"`
	Role        UserRole   `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	FirstName   string     `gorm:"size:100" json:"first_name"`
	LastName    string     `gorm:"size:100" json:"last_name"`
	Bio         string     `gorm:"type:text" json:"bio"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	AvatarURL   string     `gorm:"size:500" json:"avatar_url"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Quan hệ
	Comments   []Comment   `json:"comments,omitempty"`
	Watchlists []Watchlist `json:"watchlists,omitempty"`
	Favorites  []Favorite  `json:"favorites,omitempty"`
	Bookmarks  []Bookmark  `json:"bookmarks,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
