package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"content-workflow/internal/logger"
)

// Logger writes one structured access log line per request.
// 5xx responses log at error level and 4xx at warn.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if unobservedPaths[c.FullPath()] {
			return
		}

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}
		logger.WithRequestID(GetRequestID(c)).Log(c.Request.Context(), level, "HTTP request", attrs...)
	}
}
