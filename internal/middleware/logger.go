package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one structured line per request.
func (mw Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		if status >= 500 {
			mw.l.Error(ctx, append([]any{"request failed"}, fields...)...)
			return
		}
		mw.l.Info(ctx, append([]any{"request"}, fields...)...)
	}
}
