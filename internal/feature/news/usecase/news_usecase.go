package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gosimple/slug"

	"blog_backend/internal/feature/news/domain/entity"
)

const (
	// maxTitleLength matches the size of the title column.
	maxTitleLength = 255
	// fallbackSlug is used when a title has no sluggable characters.
	fallbackSlug = "news"
)

// NewsRepository abstracts the persistence layer for news posts.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type NewsRepository interface {
	// Create persists a new post and fills in its ID and timestamps.
	Create(ctx context.Context, n *entity.News) error

	// FindByID retrieves a post by ID regardless of owner.
	FindByID(ctx context.Context, id uint) (*entity.News, error)

	// FindByIDAndOwner retrieves a post only if ownerID owns it.
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*entity.News, error)

	// Update overwrites title, content, slug and privacy of the post identified by n.ID and n.UserID.
	Update(ctx context.Context, n *entity.News) error

	// Delete removes the post identified by id if ownerID owns it.
	Delete(ctx context.Context, id, ownerID uint) error
}

// NewsInput is the editable part of a post.
type NewsInput struct {
	Title     string
	Content   string
	IsPrivate bool
}

// NewsUsecase provides the create/edit/delete operations on posts.
type NewsUsecase struct {
	repo NewsRepository
}

// NewNewsUsecase creates a new NewsUsecase with the given repository.
func NewNewsUsecase(r NewsRepository) *NewsUsecase {
	return &NewsUsecase{repo: r}
}

func normalize(in NewsInput) (NewsInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	if in.Title == "" {
		return in, fmt.Errorf("%w: title is required", ErrInvalidNews)
	}
	if utf8.RuneCountInString(in.Title) > maxTitleLength {
		return in, fmt.Errorf("%w: title must be at most %d characters", ErrInvalidNews, maxTitleLength)
	}
	if in.Content == "" {
		return in, fmt.Errorf("%w: content is required", ErrInvalidNews)
	}
	return in, nil
}

func makeSlug(title string) string {
	s := slug.Make(title)
	if s == "" {
		return fallbackSlug
	}
	return s
}

// Create publishes a new post owned by ownerID.
func (u *NewsUsecase) Create(ctx context.Context, ownerID uint, in NewsInput) (*entity.News, error) {
	in, err := normalize(in)
	if err != nil {
		return nil, err
	}

	n := &entity.News{
		Title:     in.Title,
		Content:   in.Content,
		Slug:      makeSlug(in.Title),
		IsPrivate: in.IsPrivate,
		UserID:    ownerID,
	}
	if err := u.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to create news: %w", err)
	}
	return n, nil
}

// Update edits a post owned by ownerID.
// It returns ErrNewsNotFound both for unknown IDs and for posts of other users.
func (u *NewsUsecase) Update(ctx context.Context, id, ownerID uint, in NewsInput) (*entity.News, error) {
	in, err := normalize(in)
	if err != nil {
		return nil, err
	}

	n := &entity.News{
		ID:        id,
		UserID:    ownerID,
		Title:     in.Title,
		Content:   in.Content,
		Slug:      makeSlug(in.Title),
		IsPrivate: in.IsPrivate,
	}
	if err := u.repo.Update(ctx, n); err != nil {
		return nil, err
	}
	return u.repo.FindByIDAndOwner(ctx, id, ownerID)
}

// Delete removes a post owned by ownerID, with the same not-found semantics as Update.
func (u *NewsUsecase) Delete(ctx context.Context, id, ownerID uint) error {
	return u.repo.Delete(ctx, id, ownerID)
}

// FindByID returns a post by ID.
func (u *NewsUsecase) FindByID(ctx context.Context, id uint) (*entity.News, error) {
	return u.repo.FindByID(ctx, id)
}

// FindOwned returns a post only when ownerID owns it; used to prefill the edit form.
func (u *NewsUsecase) FindOwned(ctx context.Context, id, ownerID uint) (*entity.News, error) {
	return u.repo.FindByIDAndOwner(ctx, id, ownerID)
}
