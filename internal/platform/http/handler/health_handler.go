// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingFunc は依存先（データベース）の疎通を確認します。
type PingFunc func() error

// Health はサービスヘルスチェック用の /healthz エンドポイントを返します。
// ping が失敗した場合は503を返します。ping が nil の場合はプロセスの生存のみを報告します。
func Health(ping PingFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		status := http.StatusOK
		body := gin.H{"status": "ok"}
		if ping != nil {
			if err := ping(); err != nil {
				slog.Error("health check failed", "error", err)
				status = http.StatusServiceUnavailable
				body = gin.H{"status": "unavailable"}
			}
		}

		if c.Request.Method == http.MethodHead {
			c.Status(status)
			return
		}
		c.JSON(status, body)
	}
}
