package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"shop_backend/internal/feature/auth/domain"
	"shop_backend/internal/feature/auth/domain/entity"
)

// AccessPolicy はルートごとの認可要件です。
type AccessPolicy struct {
	// RequiresAuth が真の場合、有効なセッショントークンを必須とします。
	RequiresAuth bool
	// Roles は通過を許可するロールです。空の場合は認証済みユーザー全員を許可します。
	Roles []entity.Role
	// RolesRequired が真でRolesが空の場合は常に拒否します。
	RolesRequired bool
}

// Public は誰でもアクセスできるルートのポリシーです。
var Public = AccessPolicy{}

// Authenticated はログイン済みの全ユーザーを許可します。
var Authenticated = AccessPolicy{RequiresAuth: true}

// RequireRoles は現在のロールがrolesのいずれかに該当するログイン済みユーザーを許可します。
func RequireRoles(roles ...entity.Role) AccessPolicy {
	return AccessPolicy{RequiresAuth: true, Roles: roles, RolesRequired: true}
}

// TokenVerifier はセッショントークンを検証し、トークンが示すIdentityを返します。
type TokenVerifier interface {
	VerifyToken(token string) (entity.Identity, error)
}

// UserFinder は最新のユーザーレコードを取得します。
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// Authorizer はリクエストの通過可否を判定します。
type Authorizer struct {
	users  UserFinder
	tokens TokenVerifier
}

// NewAuthorizer はAuthorizerを生成します。
func NewAuthorizer(users UserFinder, tokens TokenVerifier) *Authorizer {
	return &Authorizer{users: users, tokens: tokens}
}

// Authorize はAuthorizationヘッダーの値をpolicyと照合します。
// ロールの判定にはトークン内のロールではなく、DBに保存されている現在のロールを使用します。
func (a *Authorizer) Authorize(ctx context.Context, authorization string, policy AccessPolicy) (entity.Identity, error) {
	if !policy.RequiresAuth {
		return entity.Identity{}, nil
	}
	if policy.RolesRequired && len(policy.Roles) == 0 {
		return entity.Identity{}, fmt.Errorf("%w: roles not specified for route", domain.ErrForbidden)
	}

	token, ok := BearerToken(authorization)
	if !ok {
		return entity.Identity{}, fmt.Errorf("%w: no token provided", domain.ErrUnauthenticated)
	}

	claimed, err := a.tokens.VerifyToken(token)
	if err != nil {
		return entity.Identity{}, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}

	user, err := a.users.FindByID(ctx, claimed.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return entity.Identity{}, fmt.Errorf("%w: user no longer exists", domain.ErrUnauthenticated)
		}
		return entity.Identity{}, err
	}

	if len(policy.Roles) > 0 && !slices.Contains(policy.Roles, user.Role) {
		return entity.Identity{}, domain.ErrForbidden
	}

	return entity.Identity{UserID: user.ID, Role: user.Role}, nil
}

// BearerToken は"Bearer <token>"形式のヘッダーからトークンを取り出します。
func BearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" || token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}
