// Package di はアプリケーションの各コンポーネントを組み立てるファクトリを提供します。
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"shop_backend/internal/app/config"
	authadapters "shop_backend/internal/feature/auth/adapters"
	authhandler "shop_backend/internal/feature/auth/transport/handler"
	authusecase "shop_backend/internal/feature/auth/usecase"
	infrahttp "shop_backend/internal/platform/http"
	"shop_backend/internal/platform/http/handler"
	jwtmw "shop_backend/internal/platform/jwt"
	"shop_backend/internal/platform/mail"
	"shop_backend/internal/platform/password"
	"shop_backend/internal/platform/securetoken"
	"shop_backend/internal/shared/ratelimiter"
)

// Components はルーターが必要とするコンポーネントをまとめたものです。
type Components struct {
	Auth       *authhandler.AuthHandler
	Users      *authhandler.UserHandler
	Health     *handler.HealthHandler
	Authorizer *authusecase.Authorizer
	Limiter    ratelimiter.Limiter
}

// NewComponents はauthフィーチャーを組み立てます。rdbはnilでも構いません。
func NewComponents(cfg config.Config, db *gorm.DB, rdb *redis.Client) (*Components, error) {
	users := authadapters.NewUserRepository(db)
	tokens := jwtmw.NewGenerator(cfg.JWT.Secret, cfg.JWT.Expiration)
	mailer := mail.NewResendMailer(cfg.Mail, infrahttp.NewHTTPClient(cfg.Mail.Timeout))

	authUC := authusecase.NewAuthUsecase(
		users,
		password.NewHasher(cfg.BcryptCost),
		tokens,
		securetoken.NewGenerator(),
		mailer,
		authusecase.Config{
			Domain:                cfg.Domain,
			VerificationTokenTTL:  cfg.VerificationTokenTTL,
			ResetPasswordTokenTTL: cfg.ResetPasswordTokenTTL,
		},
	)

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	return &Components{
		Auth:       authhandler.NewAuthHandler(authUC),
		Users:      authhandler.NewUserHandler(authUC),
		Health:     handler.NewHealthHandler(sqlDB),
		Authorizer: authusecase.NewAuthorizer(users, tokens),
		Limiter:    NewLimiter(rdb, cfg.RateLimitRequests, cfg.RateLimitWindow),
	}, nil
}
