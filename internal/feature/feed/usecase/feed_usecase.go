package usecase

import (
	"context"
	"errors"
	"fmt"

	authentity "blog_backend/internal/feature/auth/domain/entity"
	authusecase "blog_backend/internal/feature/auth/usecase"
	"blog_backend/internal/feature/feed/domain/entity"
)

const (
	// FeedLimit caps the number of posts on the main page.
	FeedLimit = 50
	// LeaderboardLimit caps the number of authors in the leaderboard.
	LeaderboardLimit = 10
)

// FeedRepository is the read side over posts joined with their authors.
// All listings are ordered by post ID descending.
type FeedRepository interface {
	ListPublic(ctx context.Context, limit int) ([]entity.FeedItem, error)
	// SearchPublicByTitle matches titles containing substr, case-sensitively.
	SearchPublicByTitle(ctx context.Context, substr string, limit int) ([]entity.FeedItem, error)
	// Leaderboard counts every post regardless of privacy, ordered by count desc then nickname asc.
	Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
	ListByOwner(ctx context.Context, userID uint, includePrivate bool) ([]entity.FeedItem, error)
}

// UserFinder resolves a user by nickname.
type UserFinder interface {
	FindByNickname(ctx context.Context, nickname string) (*authentity.User, error)
}

// FeedUsecase builds the main page and profile pages.
type FeedUsecase struct {
	repo  FeedRepository
	users UserFinder
}

// NewFeedUsecase creates a new FeedUsecase.
func NewFeedUsecase(repo FeedRepository, users UserFinder) *FeedUsecase {
	return &FeedUsecase{repo: repo, users: users}
}

// BuildFeed returns the newest public posts, optionally filtered by title, and the leaderboard.
// An empty filter means no filter.
func (u *FeedUsecase) BuildFeed(ctx context.Context, filter string) (*entity.Feed, error) {
	var (
		posts []entity.FeedItem
		err   error
	)
	if filter == "" {
		posts, err = u.repo.ListPublic(ctx, FeedLimit)
	} else {
		posts, err = u.repo.SearchPublicByTitle(ctx, filter, FeedLimit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	board, err := u.repo.Leaderboard(ctx, LeaderboardLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to build leaderboard: %w", err)
	}

	return &entity.Feed{
		Posts:       posts,
		Leaderboard: board,
		Filter:      filter,
	}, nil
}

// GetProfile returns the user with the given nickname and their posts.
// The owner sees private posts as well; everyone else only sees public ones.
func (u *FeedUsecase) GetProfile(ctx context.Context, nickname string, viewerID uint) (*entity.Profile, error) {
	user, err := u.users.FindByNickname(ctx, nickname)
	if err != nil {
		if errors.Is(err, authusecase.ErrUserNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	isOwner := viewerID != 0 && viewerID == user.ID
	posts, err := u.repo.ListByOwner(ctx, user.ID, isOwner)
	if err != nil {
		return nil, fmt.Errorf("failed to list profile posts: %w", err)
	}

	return &entity.Profile{
		User:    user,
		Posts:   posts,
		IsOwner: isOwner,
	}, nil
}
