package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cookstemma/edge/internal/observability"
)

// RequestIDHeader carries the correlation id in and out.
const RequestIDHeader = "X-Request-ID"

// RequestLogger assigns a correlation id to every request and logs it once it completes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = observability.GenerateCorrelationID()
		}
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(observability.WithCorrelationID(c.Request.Context(), id))

		path := c.Request.URL.Path
		c.Next()

		fields := []any{
			slog.Int("status", c.Writer.Status()),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("ip", c.ClientIP()),
			slog.Duration("latency", time.Since(start)),
			slog.String("user_agent", c.Request.UserAgent()),
		}

		if len(c.Errors) > 0 {
			fields = append(fields, slog.String("error", c.Errors.String()))
			observability.GlobalLogger.ErrorContext(c.Request.Context(), "request failed", fields...)
			return
		}
		observability.GlobalLogger.InfoContext(c.Request.Context(), "request processed", fields...)
	}
}
