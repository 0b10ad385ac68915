package middleware

import (
	"github.com/gin-gonic/gin"
)

// storefront dev origins; production origins come from a reverse proxy.
var allowedOrigins = map[string]bool{
	"http://localhost:3000": true,
	"http://127.0.0.1:3000": true,
	"http://localhost:5173": true,
	"http://127.0.0.1:5173": true,
}

// CORS returns a middleware that handles Cross-Origin Resource Sharing (CORS).
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if allowedOrigins[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		} else {
			// Default to the storefront dev origin
			c.Writer.Header().Set("Access-Control-Allow-Origin", "http://localhost:3000")
		}

		// Set CORS headers using Writer.Header() to ensure they're set before compression
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-API-Key, X-Cart-Session, Idempotency-Key, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, PATCH")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID, X-Cart-Session")

		// Handle preflight OPTIONS request
		if c.Request.Method == "OPTIONS" {
			c.Writer.WriteHeader(204)
			c.Abort()
			return
		}

		c.Next()
	}
}
