package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"blog_backend/internal/app/di"
	authadapters "blog_backend/internal/feature/auth/adapters"
	authusecase "blog_backend/internal/feature/auth/usecase"
	newsusecase "blog_backend/internal/feature/news/usecase"
	"blog_backend/internal/platform/config"
	platformredis "blog_backend/internal/platform/redis"
)

const seedPassword = "password123"

type seedResult struct {
	Users int
	Posts int
}

func newSeedCmd() *cobra.Command {
	var users, posts int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo users (user1..userN) and posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if users < 1 {
				return fmt.Errorf("--users must be at least 1")
			}
			db, err := openDB()
			if err != nil {
				return err
			}

			cfg := config.FromEnv()
			var rdb *redisv9.Client
			if c, err := platformredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err == nil {
				rdb = c
				defer func() { _ = rdb.Close() }()
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			res, err := seed(ctx, db, rdb, users, posts)
			if err != nil {
				return err
			}
			cmd.Printf("seed ok: %d users created, %d posts created\n", res.Users, res.Posts)
			return nil
		},
	}
	cmd.Flags().IntVar(&users, "users", 5, "number of users")
	cmd.Flags().IntVar(&posts, "posts", 20, "number of posts, spread round-robin over the users")
	return cmd
}

// seed is idempotent for users: existing nicknames are reused. Every third post is private.
func seed(ctx context.Context, db *gorm.DB, rdb *redisv9.Client, users, posts int) (seedResult, error) {
	var res seedResult

	userRepo := authadapters.NewUserRepository(db)
	auth := authusecase.NewAuthUsecase(userRepo, authadapters.NewSessionRepository(db), nil, authusecase.SessionPolicy{})
	news := newsusecase.NewNewsUsecase(di.NewNewsRepository(rdb, db))

	ids := make([]uint, 0, users)
	for i := 1; i <= users; i++ {
		nickname := fmt.Sprintf("user%d", i)
		u, err := auth.Signup(ctx, authusecase.SignupInput{
			Nickname: nickname,
			Name:     fmt.Sprintf("User %d", i),
			Email:    nickname + "@example.com",
			Password: seedPassword,
		})
		switch {
		case err == nil:
			res.Users++
		case errors.Is(err, authusecase.ErrDuplicateCredential):
			if u, err = userRepo.FindByNickname(ctx, nickname); err != nil {
				return res, fmt.Errorf("failed to load existing %s: %w", nickname, err)
			}
		default:
			return res, fmt.Errorf("failed to create %s: %w", nickname, err)
		}
		ids = append(ids, u.ID)
	}

	for i := 0; i < posts; i++ {
		owner := ids[i%len(ids)]
		_, err := news.Create(ctx, owner, newsusecase.NewsInput{
			Title:     fmt.Sprintf("Post number %d", i+1),
			Content:   fmt.Sprintf("Demo content for post %d.", i+1),
			IsPrivate: i%3 == 2,
		})
		if err != nil {
			return res, fmt.Errorf("failed to create post %d: %w", i+1, err)
		}
		res.Posts++
	}

	slog.Info("seed finished", "users", res.Users, "posts", res.Posts)
	return res, nil
}
