package httpbase

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK responds the client with data encoded as plain JSON.
//
// Example:
// * OK(c, something)
func OK(c *gin.Context, data interface{}) {
	c.PureJSON(http.StatusOK, data)
}

// OKEmpty responds with status 200 and no body.
func OKEmpty(c *gin.Context) {
	c.Status(http.StatusOK)
}

// BadRequest logs the cause at warn level and responds with status 400 and no body.
//
// Example:
//
//	BadRequest(c, err)
func BadRequest(c *gin.Context, err error) {
	slog.WarnContext(c.Request.Context(), "bad request",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Any("error", err))
	c.Status(http.StatusBadRequest)
}

// ServerError logs the cause at error level and responds with status 500 and no body.
//
// Example:
//
//	ServerError(c, errors.New("internal server error"))
func ServerError(c *gin.Context, err error) {
	slog.ErrorContext(c.Request.Context(), "internal server error",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Any("error", err))
	c.Status(http.StatusInternalServerError)
}
