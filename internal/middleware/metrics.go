package middleware

import (
	"strconv"

	"github.com/fintrellis/fx_engine_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records a per-request counter labelled by method, matched route and
// response status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
