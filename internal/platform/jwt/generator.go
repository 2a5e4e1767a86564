// Package jwtmw はセッショントークン(JWT)の発行と検証を提供します。
package jwtmw

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"shop_backend/internal/feature/auth/domain"
	"shop_backend/internal/feature/auth/domain/entity"
)

// Claims はセッショントークンのペイロードです。
type Claims struct {
	UserID uint   `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// generator はHS256のセッショントークンに署名・検証します。
type generator struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

// NewGenerator は指定されたシークレットと有効期間でJWTジェネレーターを生成します。
func NewGenerator(secret string, expiration time.Duration) *generator {
	return &generator{
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
	}
}

// GenerateToken はユーザーIDとロールを含む署名付きトークンを生成します。
func (g *generator) GenerateToken(userID uint, role entity.Role) (string, error) {
	now := g.now()
	claims := Claims{
		UserID: userID,
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken は署名と有効期限を検証し、トークンのクレームを返します。
// 失敗時は常にdomain.ErrInvalidTokenを返します。
func (g *generator) ParseToken(tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, domain.ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return g.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(g.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// VerifyToken は有効なトークンが示すIdentityを返します。
func (g *generator) VerifyToken(tokenStr string) (entity.Identity, error) {
	claims, err := g.ParseToken(tokenStr)
	if err != nil {
		return entity.Identity{}, err
	}
	return entity.Identity{UserID: claims.UserID, Role: entity.Role(claims.Role)}, nil
}
