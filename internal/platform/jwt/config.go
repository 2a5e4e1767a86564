package jwtmw

import (
	"errors"
	"os"
	"time"
)

const (
	// EnvKeyJWTSecret は署名用シークレットの環境変数名です。
	EnvKeyJWTSecret = "JWT_SECRET"
	// EnvKeyJWTExpiresIn はトークン有効期間の環境変数名です。
	EnvKeyJWTExpiresIn = "JWT_EXPIRES_IN"

	defaultExpiration = 15 * time.Minute
)

// Config はセッショントークンの設定を保持します。
type Config struct {
	Secret     string
	Expiration time.Duration
}

// LoadConfig は環境変数からトークン設定を読み込みます。
// JWT_SECRETは必須です。JWT_EXPIRES_INが解析できない場合はデフォルト値を使います。
func LoadConfig() (Config, error) {
	cfg := Config{
		Secret:     os.Getenv(EnvKeyJWTSecret),
		Expiration: defaultExpiration,
	}
	if cfg.Secret == "" {
		return cfg, errors.New("JWT_SECRET is not set")
	}
	if v := os.Getenv(EnvKeyJWTExpiresIn); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Expiration = d
		}
	}
	return cfg, nil
}
