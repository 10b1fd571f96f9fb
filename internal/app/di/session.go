// Package di wires repositories, usecases and handlers into the blog application.
package di

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "blog_backend/internal/feature/auth/adapters"
	"blog_backend/internal/feature/auth/usecase"
	"blog_backend/internal/platform/session"
)

// sessionKeyPrefix は Redis 上のセッションキーの接頭辞です。
const sessionKeyPrefix = "session"

// NewSessionRepository はログインセッションの保存先を選びます。
// Redis が設定されていればTTL付きのキーに、なければ sessions テーブルに保存します。
func NewSessionRepository(rdb *redis.Client, db *gorm.DB) usecase.SessionRepository {
	if rdb != nil {
		slog.Debug("using redis session store", "prefix", sessionKeyPrefix)
		return session.NewSessionRedis(rdb, sessionKeyPrefix)
	}
	slog.Debug("using database session store")
	return authadapters.NewSessionRepository(db)
}
