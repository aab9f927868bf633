package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()

		event := log.Info()
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		}

		logRequest(event, c, path, status, time.Since(start))
	}
}

func logRequest(event *zerolog.Event, c *gin.Context, path string, status int, latency time.Duration) {
	event.
		Str("request_id", c.GetString(requestIDKey)).
		Str("method", c.Request.Method).
		Str("path", path).
		Int("status", status).
		Dur("latency_ms", latency).
		Str("ip", c.ClientIP()).
		Msg("HTTP Request")
}
