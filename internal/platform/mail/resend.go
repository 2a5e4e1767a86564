package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

// sendRequest はResendのPOST /emailsのリクエストボディです。
type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// ResendMailer はResend APIを使ってメールを送信するNotifier実装です。
type ResendMailer struct {
	cfg    Config
	client *http.Client
}

// NewResendMailer は指定された設定とHTTPクライアントでResendMailerを生成します。
func NewResendMailer(cfg Config, client *http.Client) *ResendMailer {
	return &ResendMailer{cfg: cfg, client: client}
}

// Send はテンプレートをdataで描画し、指定アドレスへ送信します。
// APIキーが未設定の場合は送信せずにログへ記録します。
func (m *ResendMailer) Send(ctx context.Context, to, template string, data map[string]any) error {
	msg, err := render(template, data)
	if err != nil {
		return err
	}

	if m.cfg.APIKey == "" {
		slog.WarnContext(ctx, "RESEND_API_KEY is not set; email not sent", "to", to, "template", template, "subject", msg.Subject)
		// 本文には有効なリンクが含まれるため、Debugレベルでのみ出力する
		slog.DebugContext(ctx, "unsent email body", "to", to, "body", msg.HTML)
		return nil
	}

	body, err := json.Marshal(sendRequest{
		From:    m.cfg.From,
		To:      []string{to},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return err
	}

	u := strings.TrimRight(m.cfg.BaseURL, "/") + "/emails"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("resend request failed: %w", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 300 {
		return fmt.Errorf("resend http %d", res.StatusCode)
	}

	slog.InfoContext(ctx, "email sent", "to", to, "template", template)
	return nil
}
