// Package http はアウトバウンドHTTP通信とHTTPミドルウェアの共通部品を提供します。
package http

import (
	"net"
	"net/http"
	"time"
)

// defaultTimeout は0以下のタイムアウトが渡された場合に使用します。
const defaultTimeout = 10 * time.Second

// NewHTTPClient はメール送信APIなど外部API呼び出し用のHTTPクライアントを作成します。
//
// http.DefaultClientにはタイムアウトがないため、外部呼び出しでは常にこのクライアントを使うこと。
// timeoutが0以下の場合は10秒を使います。
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          20,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: timeout,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
