package trace

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID   = "X-Request-ID"
	HeaderTraceparent = "Traceparent"
	HeaderXB3         = "X-B3-TraceId"
)

// requestIDContextKey is the context.Context key of the request id.
type requestIDContextKey struct{}

var (
	// headers an upstream proxy may already have set, in lookup order
	requestIDHeaders = []string{
		HeaderRequestID,
		HeaderTraceparent,
		HeaderXB3,
	}
)

// GetOrGenRequestID returns the request id of the current request, taking it
// from the gin context, then from the upstream headers, and generating a new
// one if none is found. The id is cached in the gin context and injected into
// the request's context.Context so that loggers can pick it up.
func GetOrGenRequestID(c *gin.Context) string {
	requestID := GetRequestIDInGinContext(c)
	if requestID == "" {
		requestID = NewRequestID()
	}
	c.Set(HeaderRequestID, requestID)

	if GetRequestIDFromContext(c.Request.Context()) != requestID {
		c.Request = c.Request.WithContext(SetRequestIDInContext(c.Request.Context(), requestID))
	}
	return requestID
}

func GetRequestIDInGinContext(c *gin.Context) string {
	if nil == c {
		return ""
	}
	if requestID, ok := c.Get(HeaderRequestID); ok {
		if rid, ok := requestID.(string); ok {
			return rid
		}
	}

	if nil == c.Request {
		return ""
	}
	for _, header := range requestIDHeaders {
		headerValue := strings.TrimSpace(c.Request.Header.Get(header))
		if headerValue == "" {
			continue
		}
		if header == HeaderTraceparent {
			// W3C Trace Context format: version-traceid-spanid-traceflags
			if traceID := TraceIDFromTraceparent(headerValue); traceID != "" {
				return traceID
			}
			continue
		}
		return headerValue
	}
	return ""
}

func TraceIDFromTraceparent(traceparent string) string {
	parts := strings.Split(traceparent, "-")
	if len(parts) == 4 {
		return parts[1]
	}
	return ""
}

func NewRequestID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

func SetRequestIDInContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey{}, requestID)
}

// GetRequestIDFromContext returns the request id stored in ctx, or an empty
// string. It never generates a new id.
func GetRequestIDFromContext(ctx context.Context) string {
	if nil == ctx {
		return ""
	}
	// gin.Context.Value does not reach the request context for struct keys
	// unless ContextWithFallback is set
	if c, ok := ctx.(*gin.Context); ok {
		if c.Request == nil {
			return ""
		}
		ctx = c.Request.Context()
	}
	if requestID, ok := ctx.Value(requestIDContextKey{}).(string); ok {
		return requestID
	}
	return ""
}
