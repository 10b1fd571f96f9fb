// Package usecase implements the business logic for the news feature.
package usecase

import "errors"

var (
	// ErrNewsNotFound is returned when a post does not exist or is not owned by the caller.
	// Callers cannot tell the two cases apart.
	ErrNewsNotFound = errors.New("news not found")

	// ErrInvalidNews is returned when a submitted post fails validation.
	ErrInvalidNews = errors.New("invalid news")
)
