// Package entity defines the read models of the feed feature.
package entity

import (
	"time"

	authentity "blog_backend/internal/feature/auth/domain/entity"
)

// FeedItem is a post as shown in a listing, with its author's nickname resolved.
type FeedItem struct {
	ID             uint
	Title          string
	Content        string
	Slug           string
	IsPrivate      bool
	UserID         uint
	AuthorNickname string
	CreatedAt      time.Time
}

// LeaderboardEntry is one row of the most-active-authors table.
type LeaderboardEntry struct {
	Nickname string `json:"nickname"`
	Count    int64  `json:"count" gorm:"column:post_count"`
}

// Feed is the content of the main page.
type Feed struct {
	Posts       []FeedItem
	Leaderboard []LeaderboardEntry
	// Filter is the title filter that produced Posts; empty when unfiltered.
	Filter string
}

// Profile is a user with the posts visible to the current viewer.
type Profile struct {
	User    *authentity.User
	Posts   []FeedItem
	IsOwner bool
}
