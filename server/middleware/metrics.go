package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/restkit/observability"
)

// GinMetrics returns a Gin middleware that records request counts, durations,
// and the active request gauge on the given instruments.
func GinMetrics(m *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		start := time.Now()
		m.RecordRequestStart(ctx)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		m.RecordRequestEnd(ctx, c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
