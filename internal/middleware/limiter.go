package middleware

import (
	"github.com/tams-cso/tams-club-cal-sub000/pkg/app"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/code"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/limiter"

	"github.com/gin-gonic/gin"
)

// RateLimiter rejects requests once the matching token bucket drains.
func RateLimiter(l limiter.Face) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := l.Key(c)
		if bucket, ok := l.GetBucket(key); ok {
			count := bucket.TakeAvailable(1)
			if count == 0 {
				response := app.NewResponse(c)
				response.ToResponse(code.ErrorTooManyRequests)
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
