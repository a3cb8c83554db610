package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	bld "opencsg.com/bookmark-server/builder/prometheus"
)

// routes that did not match are grouped under one label value
const unmatchedRoute = "unmatched"

// Metrics records request count and latency per route.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = unmatchedRoute
		}
		if bld.HttpRequestsTotal != nil {
			bld.HttpRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		}
		if bld.HttpRequestDuration != nil {
			bld.HttpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
		}
	}
}
