// Package entity defines the domain models for the news feature.
package entity

import (
	"time"

	authentity "blog_backend/internal/feature/auth/domain/entity"
)

// News is a single authored post, public or private.
// Ownership is fixed at creation; only the owner may edit or delete it.
type News struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"size:255;not null"`
	Content   string    `gorm:"type:text;not null"`
	Slug      string    `gorm:"size:255;index"`
	IsPrivate bool      `gorm:"not null;default:false;index"`
	UserID    uint      `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	// User is only declared so the migration emits the foreign key; it is never preloaded.
	User *authentity.User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

// TableName specifies the table name for the News model.
func (News) TableName() string {
	return "news"
}
