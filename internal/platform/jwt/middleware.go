// Package jwtmw implements the session cookie and the identity middleware.
package jwtmw

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/feature/auth/domain/entity"
	authusecase "blog_backend/internal/feature/auth/usecase"
	"blog_backend/internal/platform/identity"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

// SessionResolver restores the user behind a server-side session.
type SessionResolver interface {
	ResolveSession(ctx context.Context, sessionID string) (*entity.User, error)
}

// Middleware reads the session cookie and publishes the request identity.
type Middleware struct {
	tokens       *Generator
	resolver     SessionResolver
	secureCookie bool
}

// NewMiddleware creates a Middleware.
func NewMiddleware(tokens *Generator, resolver SessionResolver, secureCookie bool) *Middleware {
	return &Middleware{tokens: tokens, resolver: resolver, secureCookie: secureCookie}
}

// LoadIdentity returns a Gin middleware that attaches the logged-in user to the context.
// It never aborts: requests with a missing or stale cookie continue anonymously.
func (m *Middleware) LoadIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(CookieName)
		if err != nil || raw == "" {
			c.Next()
			return
		}

		claims, err := m.tokens.ParseToken(raw)
		if err != nil {
			slog.Debug("discarding invalid session cookie", "remote_addr", c.ClientIP())
			m.ClearCookie(c)
			c.Next()
			return
		}

		user, err := m.resolver.ResolveSession(c.Request.Context(), claims.SessionID)
		if err != nil {
			if isStaleSession(err) {
				m.ClearCookie(c)
			} else {
				slog.Warn("session lookup failed", "error", err, "remote_addr", c.ClientIP())
			}
			c.Next()
			return
		}
		if user.ID != claims.UserID {
			slog.Warn("session token subject mismatch", "session_id", claims.SessionID, "remote_addr", c.ClientIP())
			m.ClearCookie(c)
			c.Next()
			return
		}

		identity.Set(c, identity.Identity{
			UserID:    user.ID,
			Nickname:  user.Nickname,
			SessionID: claims.SessionID,
		})
		c.Next()
	}
}

// AuthRequired returns a Gin middleware that redirects anonymous requests to the login page.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := identity.From(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SetCookie writes the session cookie. maxAge <= 0 produces a browser-session cookie.
func (m *Middleware) SetCookie(c *gin.Context, token string, maxAge int) {
	if maxAge < 0 {
		maxAge = 0
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, maxAge, "/", "", m.secureCookie, true)
}

// ClearCookie expires the session cookie.
func (m *Middleware) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", m.secureCookie, true)
}

func isStaleSession(err error) bool {
	return errors.Is(err, authusecase.ErrSessionNotFound) ||
		errors.Is(err, authusecase.ErrSessionExpired) ||
		errors.Is(err, authusecase.ErrSessionRevoked) ||
		errors.Is(err, authusecase.ErrUserNotFound)
}
