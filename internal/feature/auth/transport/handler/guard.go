package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/feature/auth/usecase"
)

// Authorizer はリクエストがルートのポリシーを満たすかどうかを判定します。
type Authorizer interface {
	Authorize(ctx context.Context, authorization string, policy usecase.AccessPolicy) (entity.Identity, error)
}

// IdentityHandler はガードが解決した呼び出し元のIdentityを受け取るGinハンドラーです。
// 公開ルートではゼロ値のIdentityが渡されます。
type IdentityHandler func(c *gin.Context, id entity.Identity)

// Guard はAuthorizationヘッダーをpolicyで検査し、解決したIdentityでnextを呼び出すGinハンドラーを返します。
// 認証・認可に失敗した場合は401/403を返し、後続の処理を中断します。
func Guard(authz Authorizer, policy usecase.AccessPolicy, next IdentityHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := authz.Authorize(c.Request.Context(), c.GetHeader("Authorization"), policy)
		if err != nil {
			RespondError(c, err)
			return
		}
		next(c, id)
	}
}
