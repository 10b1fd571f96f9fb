package di

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"blog_backend/internal/app/router"
	authadapters "blog_backend/internal/feature/auth/adapters"
	authhandler "blog_backend/internal/feature/auth/transport/handler"
	authusecase "blog_backend/internal/feature/auth/usecase"
	feedhandler "blog_backend/internal/feature/feed/transport/handler"
	feedusecase "blog_backend/internal/feature/feed/usecase"
	newshandler "blog_backend/internal/feature/news/transport/handler"
	newsusecase "blog_backend/internal/feature/news/usecase"
	"blog_backend/internal/platform/config"
	platformdb "blog_backend/internal/platform/db"
	healthhandler "blog_backend/internal/platform/http/handler"
	jwtmw "blog_backend/internal/platform/jwt"
	"blog_backend/internal/platform/render"
	"blog_backend/internal/shared/ratelimiter"
)

// NewApp wires repositories, usecases and handlers into a ready-to-run router.
// rdb may be nil, in which case sessions live in the database and nothing is cached.
func NewApp(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, error) {
	tmpl, err := render.Templates()
	if err != nil {
		return nil, err
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	sessionRepo := NewSessionRepository(rdb, db)
	newsRepo := NewNewsRepository(rdb, db)
	feedRepo := NewFeedRepository(rdb, db, cfg.LeaderboardCacheTTL)

	// Usecase
	tokens := jwtmw.NewGenerator(cfg.SecretKey)
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, tokens, authusecase.SessionPolicy{
		Lifetime:      cfg.SessionLifetime,
		ShortLifetime: cfg.SessionShortLifetime,
	})
	newsUC := newsusecase.NewNewsUsecase(newsRepo)
	feedUC := feedusecase.NewFeedUsecase(feedRepo, userRepo)

	// Handler
	sessionMW := jwtmw.NewMiddleware(tokens, authUC, cfg.CookieSecure)
	handlers := router.Handlers{
		Auth:   authhandler.NewAuthHandler(authUC, sessionMW),
		Feed:   feedhandler.NewFeedHandler(feedUC),
		News:   newshandler.NewNewsHandler(newsUC),
		Health: healthhandler.Health(func() error { return platformdb.Ping(db) }),
	}

	limiter := ratelimiter.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow)
	return router.NewRouter(handlers, sessionMW, limiter, tmpl), nil
}
