package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"logos-backend/internal/shared/telemetry"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"client_ip":   c.ClientIP(),
		}
		if genre, ok := c.Get("genre"); ok {
			fields["genre"] = genre
		}
		if lang, ok := c.Get("detectedLanguage"); ok {
			fields["detected_language"] = lang
		}
		if historyID, ok := c.Get("historyId"); ok {
			fields["history_id"] = historyID
		}

		telemetry.Info("request.complete", fields)
	}
}
