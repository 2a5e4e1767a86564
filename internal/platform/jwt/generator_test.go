package jwtmw

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"shop_backend/internal/feature/auth/domain"
	"shop_backend/internal/feature/auth/domain/entity"
)

// TestNewGenerator は各種設定でGeneratorが正しく生成されることを検証します。
func TestNewGenerator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		secret     string
		expiration time.Duration
	}{
		{"standard config", "my-secret-key", time.Hour},
		{"long expiration", "secret", 24 * time.Hour * 30},
		{"short expiration", "s", time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator(tt.secret, tt.expiration)

			if gen == nil {
				t.Fatal("expected generator to be non-nil")
			}
			if string(gen.secret) != tt.secret {
				t.Errorf("expected secret %q, got %q", tt.secret, string(gen.secret))
			}
			if gen.expiration != tt.expiration {
				t.Errorf("expected expiration %v, got %v", tt.expiration, gen.expiration)
			}
		})
	}
}

// TestGenerator_GenerateToken は生成されたJWTトークンが正しいクレームを含むことを検証します。
func TestGenerator_GenerateToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		userID     uint
		role       entity.Role
		expiration time.Duration
	}{
		{"basic user", 1, entity.RoleUser, time.Hour},
		{"admin", 42, entity.RoleAdmin, time.Hour},
		{"large user id", 999999, entity.RoleUser, 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator("test-secret", tt.expiration)
			before := time.Now().Add(-time.Second)

			tokenStr, err := gen.GenerateToken(tt.userID, tt.role)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			claims, err := gen.ParseToken(tokenStr)
			if err != nil {
				t.Fatalf("failed to parse generated token: %v", err)
			}
			if claims.UserID != tt.userID {
				t.Errorf("expected user id %d, got %d", tt.userID, claims.UserID)
			}
			if claims.Role != string(tt.role) {
				t.Errorf("expected role %q, got %q", tt.role, claims.Role)
			}
			if claims.ExpiresAt == nil || claims.IssuedAt == nil {
				t.Fatal("expected exp and iat claims")
			}
			if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != tt.expiration {
				t.Errorf("expected lifetime %v, got %v", tt.expiration, got)
			}
			if claims.IssuedAt.Before(before) {
				t.Errorf("iat %v is before generation time %v", claims.IssuedAt, before)
			}
		})
	}
}

// TestGenerator_ParseToken_Rejects は改ざん・期限切れ・署名不一致のトークンが拒否されることを検証します。
func TestGenerator_ParseToken_Rejects(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("test-secret", time.Hour)
	valid, err := gen.GenerateToken(7, entity.RoleUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expiredGen := NewGenerator("test-secret", time.Hour)
	expiredGen.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredGen.GenerateToken(7, entity.RoleUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	otherSecret, err := NewGenerator("other-secret", time.Hour).GenerateToken(7, entity.RoleUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		UserID: 7,
		Role:   string(entity.RoleAdmin),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	noneStr, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: 7, Role: string(entity.RoleUser)})
	noExpStr, err := noExp.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	zeroID, err := gen.GenerateToken(0, entity.RoleUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.token"},
		{"tampered signature", tamper(valid)},
		{"expired", expired},
		{"wrong secret", otherSecret},
		{"none algorithm", noneStr},
		{"missing expiry", noExpStr},
		{"zero user id", zeroID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			claims, err := gen.ParseToken(tt.token)
			if !errors.Is(err, domain.ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
			if claims != nil {
				t.Errorf("expected nil claims, got %+v", claims)
			}
		})
	}
}

// TestGenerator_VerifyToken はトークンからIdentityが復元されることを検証します。
func TestGenerator_VerifyToken(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("test-secret", time.Hour)
	tokenStr, err := gen.GenerateToken(5, entity.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, err := gen.VerifyToken(tokenStr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.UserID != 5 || id.Role != entity.RoleAdmin {
		t.Errorf("unexpected identity %+v", id)
	}

	if _, err := gen.VerifyToken(tamper(tokenStr)); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

// tamper flips one character in the payload segment.
func tamper(token string) string {
	parts := strings.Split(token, ".")
	if len(parts) != 3 || parts[1] == "" {
		return token + "x"
	}
	p := []byte(parts[1])
	if p[0] == 'A' {
		p[0] = 'B'
	} else {
		p[0] = 'A'
	}
	parts[1] = string(p)
	return strings.Join(parts, ".")
}
