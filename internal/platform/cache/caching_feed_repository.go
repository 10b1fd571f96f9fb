// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"blog_backend/internal/feature/feed/domain/entity"
	"blog_backend/internal/feature/feed/usecase"
)

const (
	defaultTTL       = 5 * time.Minute
	defaultNamespace = "leaderboard"
	scanCount        = 200
)

// CachingFeedRepository decorates a FeedRepository with Redis caching of the leaderboard.
// Post listings are not cached; they pass straight through to the inner repository.
type CachingFeedRepository struct {
	inner     usecase.FeedRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.FeedRepository = (*CachingFeedRepository)(nil)

// NewCachingFeedRepository decorates a FeedRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "leaderboard".
func NewCachingFeedRepository(rdb *redis.Client, ttl time.Duration, inner usecase.FeedRepository, namespace string) *CachingFeedRepository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if namespace == "" {
		namespace = defaultNamespace
	}
	return &CachingFeedRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

func (c *CachingFeedRepository) ListPublic(ctx context.Context, limit int) ([]entity.FeedItem, error) {
	return c.inner.ListPublic(ctx, limit)
}

func (c *CachingFeedRepository) SearchPublicByTitle(ctx context.Context, substr string, limit int) ([]entity.FeedItem, error) {
	return c.inner.SearchPublicByTitle(ctx, substr, limit)
}

func (c *CachingFeedRepository) ListByOwner(ctx context.Context, userID uint, includePrivate bool) ([]entity.FeedItem, error) {
	return c.inner.ListByOwner(ctx, userID, includePrivate)
}

// Leaderboard retrieves the leaderboard, checking cache first then falling back to the database.
func (c *CachingFeedRepository) Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Leaderboard(ctx, limit)
	}

	key := c.cacheKey(limit)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.LeaderboardEntry
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.Leaderboard(ctx, limit)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

func (c *CachingFeedRepository) cacheKey(limit int) string {
	return fmt.Sprintf("%s:top:%d", c.namespace, limit)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func deleteByPattern(ctx context.Context, rdb *redis.Client, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := rdb.Scan(ctx, cursor, pattern, scanCount).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
