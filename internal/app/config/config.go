// Package config はアプリケーション全体の設定を環境変数から読み込みます。
// 各プラットフォームパッケージのConfigをまとめ、起動時に一度だけ読み込みます。
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shop_backend/internal/platform/db"
	jwtmw "shop_backend/internal/platform/jwt"
	"shop_backend/internal/platform/mail"
	"shop_backend/internal/platform/redis"
)

// Config はアプリケーション全体の設定です。
type Config struct {
	Port     string
	Domain   string
	LogLevel slog.Level

	BcryptCost            int
	VerificationTokenTTL  time.Duration
	ResetPasswordTokenTTL time.Duration

	CORSAllowOrigins []string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	JWT   jwtmw.Config
	DB    db.Config
	Redis redis.Config
	Mail  mail.Config
}

// Load は環境変数から設定を読み込みます。必須項目の欠落や不正な値の場合のみエラーを返します。
func Load() (Config, error) {
	cfg := Config{
		Port:              getEnv("PORT", "5000"),
		Domain:            strings.TrimRight(getEnv("DOMAIN", "http://localhost:5000"), "/"),
		CORSAllowOrigins:  splitList(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		DB:                db.LoadConfigFromEnv(),
		Redis:             redis.LoadConfig(),
		Mail:              mail.LoadConfig(),
		BcryptCost:        bcrypt.DefaultCost,
		RateLimitRequests: 10,
		RateLimitWindow:   time.Minute,
	}

	var err error
	if cfg.LogLevel, err = parseLevel(os.Getenv("LOG_LEVEL")); err != nil {
		return cfg, err
	}
	if cfg.JWT, err = jwtmw.LoadConfig(); err != nil {
		return cfg, err
	}
	if cfg.BcryptCost, err = getInt("BCRYPT_COST", bcrypt.DefaultCost); err != nil {
		return cfg, err
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return cfg, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if cfg.VerificationTokenTTL, err = getDuration("VERIFICATION_TOKEN_TTL", 24*time.Hour); err != nil {
		return cfg, err
	}
	if cfg.ResetPasswordTokenTTL, err = getDuration("RESET_PASSWORD_TOKEN_TTL", time.Hour); err != nil {
		return cfg, err
	}
	if cfg.RateLimitRequests, err = getInt("RATE_LIMIT_REQUESTS", 10); err != nil {
		return cfg, err
	}
	if cfg.RateLimitRequests < 1 {
		return cfg, fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", cfg.RateLimitRequests)
	}
	if cfg.RateLimitWindow, err = getDuration("RATE_LIMIT_WINDOW", time.Minute); err != nil {
		return cfg, err
	}
	if cfg.RateLimitWindow <= 0 {
		return cfg, fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", cfg.RateLimitWindow)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %q", key, v)
	}
	return n, nil
}

// getDuration はGoのduration形式を解析します。"0"は対象機能の無効化として受け付けます。
func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%s must be a non-negative duration, got %q", key, v)
	}
	return d, nil
}

func parseLevel(v string) (slog.Level, error) {
	if v == "" {
		return slog.LevelInfo, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(v)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q", v)
	}
	return l, nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
