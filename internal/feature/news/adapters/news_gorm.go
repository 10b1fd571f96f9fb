// Package adapters provides the GORM-backed repository for news posts.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"blog_backend/internal/feature/news/domain/entity"
	"blog_backend/internal/feature/news/usecase"
)

// newsGorm is the GORM implementation of usecase.NewsRepository.
type newsGorm struct {
	db *gorm.DB
}

var _ usecase.NewsRepository = (*newsGorm)(nil)

// NewNewsRepository creates a news repository backed by db.
func NewNewsRepository(db *gorm.DB) *newsGorm {
	return &newsGorm{db: db}
}

func (r *newsGorm) Create(ctx context.Context, n *entity.News) error {
	if n == nil {
		return errors.New("news is nil")
	}
	return r.db.WithContext(ctx).Omit("User").Create(n).Error
}

func (r *newsGorm) FindByID(ctx context.Context, id uint) (*entity.News, error) {
	return r.findOne(ctx, r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *newsGorm) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*entity.News, error) {
	return r.findOne(ctx, r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID))
}

// Update writes the editable columns in a single statement scoped to the owner.
// Zero affected rows means the post is missing or belongs to someone else.
func (r *newsGorm) Update(ctx context.Context, n *entity.News) error {
	if n == nil {
		return errors.New("news is nil")
	}
	res := r.db.WithContext(ctx).
		Model(&entity.News{}).
		Where("id = ? AND user_id = ?", n.ID, n.UserID).
		Updates(map[string]any{
			"title":      n.Title,
			"content":    n.Content,
			"slug":       n.Slug,
			"is_private": n.IsPrivate,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrNewsNotFound
	}
	return nil
}

func (r *newsGorm) Delete(ctx context.Context, id, ownerID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&entity.News{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrNewsNotFound
	}
	return nil
}

func (r *newsGorm) findOne(_ context.Context, q *gorm.DB) (*entity.News, error) {
	var n entity.News
	if err := q.First(&n).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrNewsNotFound
		}
		return nil, err
	}
	return &n, nil
}
