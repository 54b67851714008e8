package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"smart-employee-api/internal/metrics"
)

// Metrics records request count and latency per matched route.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveRequest(route, c.Writer.Status(), time.Since(start))
	}
}
