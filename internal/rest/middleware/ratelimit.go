package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/bloggers-platform/domain"
)

// RateLimit allows limit requests per client IP and route in each window.
// When the limiter itself fails the request is let through.
func RateLimit(limiter domain.RateLimiter, limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP() + ":" + c.FullPath()
		ok, err := limiter.Allow(c.Request.Context(), key, limit, window)
		if err != nil {
			logrus.Warnf("rate limiter unavailable: %v", err)
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "too many requests"})
			return
		}
		c.Next()
	}
}
