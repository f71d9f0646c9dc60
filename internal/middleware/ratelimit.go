package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"fixmate_backend/internal/appErrors"
	"fixmate_backend/internal/logger"
	"fixmate_backend/internal/ratelimit"
)

// RateLimitMiddleware caps requests per client IP for a named purpose. Redis
// outages fail open so auth does not depend on the limiter being up.
func RateLimitMiddleware(limiter *ratelimit.Limiter, purpose string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := limiter.AllowIP(c.Request.Context(), c.ClientIP(), purpose, limit, window)
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "rate limiter unavailable", "purpose", purpose, "error", err)
			c.Next()
			return
		}
		if !ok {
			appErrors.HandleError(c, appErrors.RateLimited("Too many requests, try again later"))
			return
		}
		c.Next()
	}
}
