package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	feedadapters "blog_backend/internal/feature/feed/adapters"
	feedusecase "blog_backend/internal/feature/feed/usecase"
	newsadapters "blog_backend/internal/feature/news/adapters"
	newsusecase "blog_backend/internal/feature/news/usecase"
	"blog_backend/internal/platform/cache"
)

const leaderboardNamespace = "leaderboard"

// NewFeedRepository returns the feed read model with the leaderboard cached in Redis.
// With a nil client the cache is bypassed.
func NewFeedRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) feedusecase.FeedRepository {
	return cache.NewCachingFeedRepository(rdb, ttl, feedadapters.NewFeedRepository(db), leaderboardNamespace)
}

// NewNewsRepository returns the news store; writes that change post counts invalidate the cached leaderboard.
func NewNewsRepository(rdb *redis.Client, db *gorm.DB) newsusecase.NewsRepository {
	return cache.NewInvalidatingNewsRepository(rdb, newsadapters.NewNewsRepository(db), leaderboardNamespace)
}
