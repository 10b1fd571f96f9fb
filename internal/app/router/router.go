// Package router はHTTPルーティングを定義します。
package router

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	authhandler "blog_backend/internal/feature/auth/transport/handler"
	feedhandler "blog_backend/internal/feature/feed/transport/handler"
	newshandler "blog_backend/internal/feature/news/transport/handler"
	jwtmw "blog_backend/internal/platform/jwt"
	"blog_backend/internal/platform/render"
	"blog_backend/internal/shared/ratelimiter"
)

// Handlers はルーターに登録するハンドラー一式です。
type Handlers struct {
	Auth   *authhandler.AuthHandler
	Feed   *feedhandler.FeedHandler
	News   *newshandler.NewsHandler
	Health gin.HandlerFunc
}

// NewRouter はすべてのルートを登録したgin.Engineを生成します。
func NewRouter(h Handlers, session *jwtmw.Middleware, limiter ratelimiter.Limiter, tmpl *template.Template) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(tmpl)

	// 導通確認用（セッション解決を経由しない）
	r.GET("/healthz", h.Health)
	r.HEAD("/healthz", h.Health)
	r.OPTIONS("/healthz", h.Health)

	// 以降のルートはCookieからログインユーザーを解決する
	site := r.Group("/")
	site.Use(session.LoadIdentity())
	{
		site.GET("/", h.Feed.Index)
		site.GET("/profile=:nickname", h.Feed.Profile)

		site.GET("/register", h.Auth.RegisterPage)
		site.POST("/register", ratelimiter.Middleware(limiter), h.Auth.Register)
		site.GET("/login", h.Auth.LoginPage)
		site.POST("/login", ratelimiter.Middleware(limiter), h.Auth.Login)
	}

	// 認証必須のルート
	// → 未ログインの場合は /login へリダイレクト
	auth := site.Group("/")
	auth.Use(jwtmw.AuthRequired())
	{
		auth.GET("/logout", h.Auth.Logout)

		auth.GET("/news", h.News.NewPage)
		auth.POST("/news", h.News.Create)
		auth.GET("/news=:id", h.News.EditPage)
		auth.POST("/news=:id", h.News.Update)
		auth.GET("/news_delete/:id", h.News.Delete)
		auth.POST("/news_delete/:id", h.News.Delete)
	}

	r.NoRoute(session.LoadIdentity(), func(c *gin.Context) {
		render.Error(c, http.StatusNotFound)
	})

	return r
}
