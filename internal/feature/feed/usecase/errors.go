// Package usecase assembles the feed, leaderboard and profile views.
package usecase

import "errors"

// ErrProfileNotFound is returned when no user has the requested nickname.
var ErrProfileNotFound = errors.New("profile not found")
