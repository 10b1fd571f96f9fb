package cache

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"blog_backend/internal/feature/news/domain/entity"
	"blog_backend/internal/feature/news/usecase"
)

// InvalidatingNewsRepository decorates a NewsRepository and drops cached leaderboards
// whenever the number of posts per author changes.
type InvalidatingNewsRepository struct {
	usecase.NewsRepository
	rdb       *redis.Client
	namespace string
}

var _ usecase.NewsRepository = (*InvalidatingNewsRepository)(nil)

// NewInvalidatingNewsRepository wraps inner. If namespace is empty, it uses "leaderboard".
func NewInvalidatingNewsRepository(rdb *redis.Client, inner usecase.NewsRepository, namespace string) *InvalidatingNewsRepository {
	if namespace == "" {
		namespace = defaultNamespace
	}
	return &InvalidatingNewsRepository{
		NewsRepository: inner,
		rdb:            rdb,
		namespace:      namespace,
	}
}

// Create persists the post and invalidates the leaderboard cache.
func (r *InvalidatingNewsRepository) Create(ctx context.Context, n *entity.News) error {
	if err := r.NewsRepository.Create(ctx, n); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// Delete removes the post and invalidates the leaderboard cache.
func (r *InvalidatingNewsRepository) Delete(ctx context.Context, id, ownerID uint) error {
	if err := r.NewsRepository.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// invalidate is best effort: a failure only delays freshness until the TTL expires.
func (r *InvalidatingNewsRepository) invalidate(ctx context.Context) {
	if r.rdb == nil {
		return
	}
	if err := deleteByPattern(ctx, r.rdb, r.namespace+":*"); err != nil {
		slog.Warn("leaderboard cache invalidation failed", "error", err)
	}
}
