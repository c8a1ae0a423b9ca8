package middleware

import (
	"strconv"
	"time"

	"locker-hub/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records latency per route template, not per raw path.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
