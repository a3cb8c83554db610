package middleware

import (
	"github.com/gin-gonic/gin"
	"opencsg.com/bookmark-server/common/utils/trace"
)

// Request assigns every request an id, stores it in the request context and
// echoes it in the X-Request-ID response header.
func Request() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set("clientIP", ctx.ClientIP())
		requestID := trace.GetOrGenRequestID(ctx)
		ctx.Writer.Header().Set(trace.HeaderRequestID, requestID)
		ctx.Next()
	}
}
