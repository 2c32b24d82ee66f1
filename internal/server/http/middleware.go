package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mpetrovs/cinepass/internal/logging"
)

// RequestLogger logs one line per request with method, path, status and
// latency. Passing a nil logger disables it.
func RequestLogger(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if log == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		log.Info(c.Request.Context(), "http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
