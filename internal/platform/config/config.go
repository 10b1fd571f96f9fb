// Package config はプロセス環境（および任意の .env ファイル）からサーバー設定を読み込みます。
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config はサーバー全体の設定値です。DB接続設定は db.LoadConfigFromEnv が別途扱います。
type Config struct {
	HTTPAddr string
	LogLevel slog.Level

	SecretKey            string
	SessionLifetime      time.Duration
	SessionShortLifetime time.Duration
	CookieSecure         bool

	LeaderboardCacheTTL time.Duration
	LoginRateLimit      int
	LoginRateWindow     time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load は .env を読み込んだ上で環境変数から Config を組み立てます。
// .env が存在しない場合は環境変数のみを使用します。
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv は .env を読まずに現在の環境変数だけから Config を組み立てます。
func FromEnv() *Config {
	return &Config{
		HTTPAddr: getEnv("HTTP_ADDR", "127.0.0.1:8000"),
		LogLevel: ParseLevel(getEnv("LOG_LEVEL", "info")),

		SecretKey:            getEnv("SECRET_KEY", ""),
		SessionLifetime:      time.Duration(getEnvAsInt("SESSION_LIFETIME_DAYS", 365)) * 24 * time.Hour,
		SessionShortLifetime: time.Duration(getEnvAsInt("SESSION_SHORT_LIFETIME_HOURS", 24)) * time.Hour,
		CookieSecure:         getEnvAsBool("COOKIE_SECURE", false),

		LeaderboardCacheTTL: getEnvAsDuration("LEADERBOARD_CACHE_TTL", 5*time.Minute),
		LoginRateLimit:      getEnvAsInt("LOGIN_RATE_LIMIT", 20),
		LoginRateWindow:     time.Minute,

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
	}
}

// ParseLevel は debug/info/warn/error を slog.Level に変換します。不明な値は info になります。
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// getEnv は未設定または空文字の場合に fallback を返します。
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}
