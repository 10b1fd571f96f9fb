// Package handler provides the HTTP handlers for creating, editing and deleting posts.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/feature/news/domain/entity"
	"blog_backend/internal/feature/news/transport/http/dto"
	"blog_backend/internal/feature/news/usecase"
	"blog_backend/internal/platform/identity"
	"blog_backend/internal/platform/render"
)

const msgInvalidNews = "Title and content are required"

// NewsUsecase is the subset of the news usecase the handlers depend on.
type NewsUsecase interface {
	Create(ctx context.Context, ownerID uint, in usecase.NewsInput) (*entity.News, error)
	Update(ctx context.Context, id, ownerID uint, in usecase.NewsInput) (*entity.News, error)
	Delete(ctx context.Context, id, ownerID uint) error
	FindOwned(ctx context.Context, id, ownerID uint) (*entity.News, error)
}

// NewsHandler handles the post editor routes. All routes require a logged-in user.
type NewsHandler struct {
	news NewsUsecase
}

// NewNewsHandler creates a NewsHandler.
func NewNewsHandler(news NewsUsecase) *NewsHandler {
	return &NewsHandler{news: news}
}

// NewPage shows an empty editor.
func (h *NewsHandler) NewPage(c *gin.Context) {
	h.renderForm(c, http.StatusOK, dto.NewsForm{}, "/news", false, "")
}

// Create publishes a post and redirects to the feed.
func (h *NewsHandler) Create(c *gin.Context) {
	ownerID := identity.UserID(c)

	var form dto.NewsForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, form, "/news", false, msgInvalidNews)
		return
	}

	n, err := h.news.Create(c.Request.Context(), ownerID, toInput(form))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidNews) {
			h.renderForm(c, http.StatusBadRequest, form, "/news", false, msgInvalidNews)
			return
		}
		slog.Error("failed to create news", "error", err, "user_id", ownerID)
		render.Error(c, http.StatusInternalServerError)
		return
	}

	slog.Info("news created", "news_id", n.ID, "user_id", ownerID, "private", n.IsPrivate)
	c.Redirect(http.StatusFound, "/")
}

// EditPage shows the editor prefilled with an owned post.
func (h *NewsHandler) EditPage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	n, err := h.news.FindOwned(c.Request.Context(), id, identity.UserID(c))
	if err != nil {
		h.fail(c, err, id)
		return
	}

	form := dto.NewsForm{Title: n.Title, Content: n.Content, IsPrivate: n.IsPrivate}
	h.renderForm(c, http.StatusOK, form, editPath(id), true, "")
}

// Update saves an edited post. Posts of other users are reported as not found.
func (h *NewsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ownerID := identity.UserID(c)

	var form dto.NewsForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, form, editPath(id), true, msgInvalidNews)
		return
	}

	if _, err := h.news.Update(c.Request.Context(), id, ownerID, toInput(form)); err != nil {
		if errors.Is(err, usecase.ErrInvalidNews) {
			h.renderForm(c, http.StatusBadRequest, form, editPath(id), true, msgInvalidNews)
			return
		}
		h.fail(c, err, id)
		return
	}

	slog.Info("news updated", "news_id", id, "user_id", ownerID)
	c.Redirect(http.StatusFound, "/")
}

// Delete removes an owned post and returns to the owner's profile.
func (h *NewsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	me, _ := identity.From(c)

	if err := h.news.Delete(c.Request.Context(), id, me.UserID); err != nil {
		h.fail(c, err, id)
		return
	}

	slog.Info("news deleted", "news_id", id, "user_id", me.UserID)
	c.Redirect(http.StatusFound, "/profile="+url.PathEscape(me.Nickname))
}

func (h *NewsHandler) fail(c *gin.Context, err error, id uint) {
	if errors.Is(err, usecase.ErrNewsNotFound) {
		render.Error(c, http.StatusNotFound)
		return
	}
	slog.Error("news operation failed", "error", err, "news_id", id, "user_id", identity.UserID(c))
	render.Error(c, http.StatusInternalServerError)
}

func (h *NewsHandler) renderForm(c *gin.Context, status int, form dto.NewsForm, action string, editing bool, message string) {
	title := "New post"
	if editing {
		title = "Edit post"
	}
	render.HTML(c, status, "news_form.html", title, gin.H{
		"Form":    form,
		"Action":  action,
		"Editing": editing,
		"Message": message,
	})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		render.Error(c, http.StatusNotFound)
		return 0, false
	}
	return uint(id), true
}

func editPath(id uint) string {
	return fmt.Sprintf("/news=%d", id)
}

func toInput(f dto.NewsForm) usecase.NewsInput {
	return usecase.NewsInput{Title: f.Title, Content: f.Content, IsPrivate: f.IsPrivate}
}
