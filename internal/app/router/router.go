// Package router はGinエンジンとルートテーブルを構築します。
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"shop_backend/internal/app/di"
	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/feature/auth/transport/handler"
	"shop_backend/internal/feature/auth/usecase"
	"shop_backend/internal/platform/http/middleware"
	"shop_backend/internal/shared/ratelimiter"
)

// Route はルートテーブルの1エントリです。
// 全ルートがポリシーを明示し、ガードがハンドラー実行前にそれを確認します。
type Route struct {
	Method  string
	Path    string
	Policy  usecase.AccessPolicy
	Limited bool // 同一IPからの過剰なリクエストを制限する
	Handler handler.IdentityHandler
}

// Routes はAPIのルートテーブルを返します。
func Routes(c *di.Components) []Route {
	admin := usecase.RequireRoles(entity.RoleAdmin)

	return []Route{
		// 認証不要
		{http.MethodPost, "/api/users/auth/register", usecase.Public, true, c.Auth.Register},
		{http.MethodPost, "/api/users/auth/login", usecase.Public, true, c.Auth.Login},
		{http.MethodGet, "/api/users/verify-email/:id/:verificationToken", usecase.Public, false, c.Auth.VerifyEmail},
		{http.MethodPost, "/api/users/forgot-password", usecase.Public, true, c.Auth.ForgotPassword},
		{http.MethodGet, "/api/users/reset-password/:id/:resetPasswordToken", usecase.Public, false, c.Auth.ValidateResetLink},
		{http.MethodPost, "/api/users/reset-password", usecase.Public, false, c.Auth.ResetPassword},

		// 認証必須
		{http.MethodGet, "/api/users/current-user", usecase.Authenticated, false, c.Users.CurrentUser},
		{http.MethodPut, "/api/users", usecase.Authenticated, false, c.Users.Update},

		// 管理者のみ
		{http.MethodGet, "/api/users", admin, false, c.Users.List},
		{http.MethodDelete, "/api/users/:id", admin, false, c.Users.Delete},
	}
}

// Options はComponents以外から設定するミドルウェアのオプションです。
type Options struct {
	CORSAllowOrigins []string
}

// NewRouter はログ・リカバリー・CORS・ヘルスチェック・ルートテーブルを備えたエンジンを構築します。
func NewRouter(c *di.Components, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     opts.CORSAllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders:    []string{middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 導通確認用
	r.GET("/healthz", c.Health.Health)
	r.HEAD("/healthz", c.Health.Health)
	r.GET("/readyz", c.Health.Ready)

	for _, rt := range Routes(c) {
		handlers := make([]gin.HandlerFunc, 0, 2)
		if rt.Limited {
			handlers = append(handlers, ratelimiter.Middleware(c.Limiter, rt.Path))
		}
		handlers = append(handlers, handler.Guard(c.Authorizer, rt.Policy, rt.Handler))
		r.Handle(rt.Method, rt.Path, handlers...)
	}

	return r
}
