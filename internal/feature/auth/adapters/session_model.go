package adapters

import (
	"time"

	"blog_backend/internal/feature/auth/domain/entity"
)

// SessionRecord は sessions テーブルの行です。
// users への外部キーは張らず、期限切れの行は prune-sessions で削除します。
type SessionRecord struct {
	ID        string     `gorm:"primaryKey;size:36"`
	UserID    uint       `gorm:"index;not null"`
	UserAgent string     `gorm:"size:512"`
	IPAddress string     `gorm:"size:45"`
	Remember  bool       `gorm:"not null;default:false"`
	CreatedAt time.Time  `gorm:"not null"`
	ExpiresAt time.Time  `gorm:"index;not null"`
	RevokedAt *time.Time `gorm:"index"`
}

func (SessionRecord) TableName() string {
	return "sessions"
}

func (r *SessionRecord) toEntity() *entity.Session {
	s := entity.Session(*r)
	return &s
}

func newSessionRecord(s *entity.Session) *SessionRecord {
	r := SessionRecord(*s)
	return &r
}
