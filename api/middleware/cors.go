package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	corsAllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsAllowHeaders = []string{"Content-Type", "Authorization"}
)

// CORS applies a static any-origin policy without credentials. Requests
// without an Origin header are skipped by cors.New, so the allow-origin
// header is set here for every response.
func CORS() gin.HandlerFunc {
	handler := cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     corsAllowMethods,
		AllowHeaders:     corsAllowHeaders,
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		handler(c)
	}
}
