// Package mail はResend HTTP APIでテンプレートメールを送信します。
package mail

import (
	"os"
	"time"
)

const (
	defaultBaseURL = "https://api.resend.com"
	defaultFrom    = "Shop <no-reply@shop.local>"
)

// Config はメールクライアントの設定を保持します。
type Config struct {
	APIKey  string        // Resend APIキー。空の場合はログ出力のみ
	BaseURL string        // Base URL for the API (e.g., "https://api.resend.com")
	From    string        // 送信元アドレス
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig は環境変数からメール設定を読み込みます。
func LoadConfig() Config {
	cfg := Config{
		APIKey:  os.Getenv("RESEND_API_KEY"),
		BaseURL: os.Getenv("RESEND_BASE_URL"),
		From:    os.Getenv("MAIL_FROM"),
		Timeout: 10 * time.Second,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.From == "" {
		cfg.From = defaultFrom
	}
	return cfg
}
