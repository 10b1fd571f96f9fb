package jwtmw

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"blog_backend/internal/feature/auth/domain/entity"
	authusecase "blog_backend/internal/feature/auth/usecase"
	"blog_backend/internal/platform/identity"
)

// TestMain はテスト実行前にGinをテストモードに設定します。
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type mockResolver struct {
	ResolveSessionFunc func(ctx context.Context, sessionID string) (*entity.User, error)
}

func (m *mockResolver) ResolveSession(ctx context.Context, sessionID string) (*entity.User, error) {
	return m.ResolveSessionFunc(ctx, sessionID)
}

// newTestRouter returns a router whose /whoami handler reports the loaded identity.
func newTestRouter(mw *Middleware) *gin.Engine {
	r := gin.New()
	r.Use(mw.LoadIdentity())
	r.GET("/whoami", func(c *gin.Context) {
		id, ok := identity.From(c)
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, id.Nickname)
	})
	r.GET("/private", AuthRequired(), func(c *gin.Context) {
		c.String(http.StatusOK, "secret")
	})
	return r
}

func doRequest(r *gin.Engine, path, cookie string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: cookie})
	}
	r.ServeHTTP(w, req)
	return w
}

func TestLoadIdentity(t *testing.T) {
	gen := NewGenerator("test-secret")
	alice := &entity.User{ID: 1, Nickname: "alice"}

	resolver := &mockResolver{
		ResolveSessionFunc: func(ctx context.Context, sessionID string) (*entity.User, error) {
			switch sessionID {
			case "alive":
				return alice, nil
			case "revoked":
				return nil, authusecase.ErrSessionRevoked
			default:
				return nil, authusecase.ErrSessionNotFound
			}
		},
	}
	router := newTestRouter(NewMiddleware(gen, resolver, false))

	valid, _ := gen.GenerateToken(1, "alive", time.Now().Add(time.Hour))
	revoked, _ := gen.GenerateToken(1, "revoked", time.Now().Add(time.Hour))
	mismatched, _ := gen.GenerateToken(2, "alive", time.Now().Add(time.Hour))

	tests := []struct {
		name        string
		cookie      string
		wantBody    string
		wantCleared bool
	}{
		{"no cookie", "", "anonymous", false},
		{"valid session", valid, "alice", false},
		{"garbage cookie", "garbage", "anonymous", true},
		{"revoked session", revoked, "anonymous", true},
		{"subject mismatch", mismatched, "anonymous", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, "/whoami", tt.cookie)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())

			cleared := strings.Contains(w.Header().Get("Set-Cookie"), CookieName+"=;")
			assert.Equal(t, tt.wantCleared, cleared)
		})
	}
}

func TestAuthRequired(t *testing.T) {
	gen := NewGenerator("test-secret")
	resolver := &mockResolver{
		ResolveSessionFunc: func(ctx context.Context, sessionID string) (*entity.User, error) {
			return &entity.User{ID: 1, Nickname: "alice"}, nil
		},
	}
	router := newTestRouter(NewMiddleware(gen, resolver, false))

	t.Run("anonymous is redirected to login", func(t *testing.T) {
		w := doRequest(router, "/private", "")

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("logged in passes through", func(t *testing.T) {
		token, _ := gen.GenerateToken(1, "sid", time.Now().Add(time.Hour))
		w := doRequest(router, "/private", token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "secret", w.Body.String())
	})
}

func TestMiddleware_SetCookie(t *testing.T) {
	mw := NewMiddleware(NewGenerator("s"), nil, true)

	t.Run("remembered session has max age", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		mw.SetCookie(c, "token", 3600)

		header := w.Header().Get("Set-Cookie")
		assert.Contains(t, header, "session=token")
		assert.Contains(t, header, "Max-Age=3600")
		assert.Contains(t, header, "HttpOnly")
		assert.Contains(t, header, "Secure")
	})

	t.Run("browser session cookie has no max age", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		mw.SetCookie(c, "token", 0)

		assert.NotContains(t, w.Header().Get("Set-Cookie"), "Max-Age")
	})
}
