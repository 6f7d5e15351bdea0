package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/internal/infrastructure/ratelimit"
	"taskboard/internal/shared/logger"
	"taskboard/internal/shared/utils"
)

// RateLimit throttles by client IP over a one-minute window. Limiter errors
// fail open; throttling must never take the API down with it.
func RateLimit(limiter ratelimit.RateLimiter, perMinute int, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.ClientIP(), perMinute, time.Minute)
		if err != nil {
			log.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.Error(c, http.StatusTooManyRequests, "too many requests")
			c.Abort()
			return
		}

		c.Next()
	}
}
