package main

import (
	"errors"
	"log/slog"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"blog_backend/internal/app/di"
	"blog_backend/internal/platform/config"
	platformdb "blog_backend/internal/platform/db"
	platformredis "blog_backend/internal/platform/redis"
)

func main() {
	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	// db
	db, err := platformdb.OpenDB(platformdb.LoadConfigFromEnv())
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	if err := platformdb.Migrate(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		if !errors.Is(err, platformredis.ErrNotConfigured) {
			slog.Warn("Redis unavailable. Running without cache.", "error", err)
		}
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// SECRET_KEYチェック（開発中の注意喚起）
	if cfg.SecretKey == "" {
		slog.Warn("SECRET_KEY is not set. Using an insecure development key; set a strong secret in production.")
		cfg.SecretKey = "dev-insecure-secret"
	}

	router, err := di.NewApp(cfg, db, rdb)
	if err != nil {
		slog.Error("failed to build application", "error", err)
		os.Exit(1)
	}

	slog.Info("server starting", "addr", cfg.HTTPAddr, "redis", rdb != nil)
	if err := router.Run(cfg.HTTPAddr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
