// Package adapters provides the GORM read model for the feed.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"blog_backend/internal/feature/feed/domain/entity"
	"blog_backend/internal/feature/feed/usecase"
)

const feedColumns = "news.id, news.title, news.content, news.slug, news.is_private, news.user_id, news.created_at, " +
	"users.nickname AS author_nickname"

type feedGorm struct {
	db *gorm.DB
}

var _ usecase.FeedRepository = (*feedGorm)(nil)

// NewFeedRepository creates a feed repository backed by db.
func NewFeedRepository(db *gorm.DB) *feedGorm {
	return &feedGorm{db: db}
}

func (r *feedGorm) base(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("news").
		Select(feedColumns).
		Joins("JOIN users ON users.id = news.user_id")
}

// containsExpr returns a case-sensitive substring predicate for the active dialect.
// LIKE is case-insensitive for ASCII on SQLite, so it cannot be used here.
func (r *feedGorm) containsExpr() string {
	if r.db.Dialector.Name() == "postgres" {
		return "strpos(news.title, ?) > 0"
	}
	return "instr(news.title, ?) > 0"
}

func (r *feedGorm) ListPublic(ctx context.Context, limit int) ([]entity.FeedItem, error) {
	var items []entity.FeedItem
	err := r.base(ctx).
		Where("news.is_private = ?", false).
		Order("news.id DESC").
		Limit(limit).
		Scan(&items).Error
	return items, err
}

func (r *feedGorm) SearchPublicByTitle(ctx context.Context, substr string, limit int) ([]entity.FeedItem, error) {
	var items []entity.FeedItem
	err := r.base(ctx).
		Where("news.is_private = ?", false).
		Where(r.containsExpr(), substr).
		Order("news.id DESC").
		Limit(limit).
		Scan(&items).Error
	return items, err
}

func (r *feedGorm) Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	var entries []entity.LeaderboardEntry
	err := r.db.WithContext(ctx).
		Table("news").
		Select("users.nickname AS nickname, COUNT(news.id) AS post_count").
		Joins("JOIN users ON users.id = news.user_id").
		Group("users.id, users.nickname").
		Order("post_count DESC, users.nickname ASC").
		Limit(limit).
		Scan(&entries).Error
	return entries, err
}

func (r *feedGorm) ListByOwner(ctx context.Context, userID uint, includePrivate bool) ([]entity.FeedItem, error) {
	q := r.base(ctx).Where("news.user_id = ?", userID)
	if !includePrivate {
		q = q.Where("news.is_private = ?", false)
	}
	var items []entity.FeedItem
	err := q.Order("news.id DESC").Scan(&items).Error
	return items, err
}
