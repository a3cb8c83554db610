package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"opencsg.com/bookmark-server/common/utils/trace"
)

// Log writes one access log line per request through the default logger.
func Log() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		startTime := time.Now()

		ctx.Next()

		latency := time.Since(startTime).Milliseconds()
		slog.InfoContext(ctx.Request.Context(), "http request", slog.String("ip", ctx.ClientIP()),
			slog.String("method", ctx.Request.Method),
			slog.Int("latency(ms)", int(latency)),
			slog.Int("status", ctx.Writer.Status()),
			slog.String("url", ctx.Request.URL.RequestURI()),
			slog.String("request_id", trace.GetRequestIDInGinContext(ctx)),
		)
	}
}
