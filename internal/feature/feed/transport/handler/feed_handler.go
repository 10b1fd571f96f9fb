// Package handler provides the HTTP handlers for the main feed and profile pages.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/feature/feed/domain/entity"
	"blog_backend/internal/feature/feed/usecase"
	"blog_backend/internal/platform/identity"
	"blog_backend/internal/platform/render"
)

// FeedUsecase builds the read-only pages.
type FeedUsecase interface {
	BuildFeed(ctx context.Context, filter string) (*entity.Feed, error)
	GetProfile(ctx context.Context, nickname string, viewerID uint) (*entity.Profile, error)
}

// FeedHandler serves the feed and profile pages. Both are public.
type FeedHandler struct {
	feed FeedUsecase
}

// NewFeedHandler creates a FeedHandler.
func NewFeedHandler(feed FeedUsecase) *FeedHandler {
	return &FeedHandler{feed: feed}
}

// Index renders the newest public posts and the leaderboard. `?name=` filters by title.
func (h *FeedHandler) Index(c *gin.Context) {
	feed, err := h.feed.BuildFeed(c.Request.Context(), c.Query("name"))
	if err != nil {
		slog.Error("failed to build feed", "error", err)
		render.Error(c, http.StatusInternalServerError)
		return
	}
	render.HTML(c, http.StatusOK, "index.html", "Blog", gin.H{"Feed": feed})
}

// Profile renders a user's page. Private posts are included only for the owner.
func (h *FeedHandler) Profile(c *gin.Context) {
	nickname := c.Param("nickname")
	profile, err := h.feed.GetProfile(c.Request.Context(), nickname, identity.UserID(c))
	if err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			render.Error(c, http.StatusNotFound)
			return
		}
		slog.Error("failed to load profile", "error", err, "nickname", nickname)
		render.Error(c, http.StatusInternalServerError)
		return
	}
	render.HTML(c, http.StatusOK, "profile.html", "Profile", gin.H{"Profile": profile})
}
