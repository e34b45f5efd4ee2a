package middleware

import (
	"time"

	"github.com/didip/tollbooth/v7"
	toll_limiter "github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-gonic/gin"
)

// NewIPRateLimiter returns a gin.HandlerFunc limiting requests per IP:
// maxReqs per second, burst for instant spikes, entries expire after period.
func NewIPRateLimiter(maxReqs float64, burst int, period time.Duration) gin.HandlerFunc {
	lim := tollbooth.NewLimiter(maxReqs, &toll_limiter.ExpirableOptions{
		DefaultExpirationTTL: period,
	})
	lim.SetBurst(burst)
	lim.SetIPLookups([]string{"RemoteAddr"})

	return func(c *gin.Context) {
		if httpErr := tollbooth.LimitByRequest(lim, c.Writer, c.Request); httpErr != nil {
			retryAfter := c.Writer.Header().Get("Retry-After")
			c.AbortWithStatusJSON(httpErr.StatusCode, gin.H{
				"error":       "too many attempts, try again later",
				"retry_after": retryAfter,
			})
			return
		}
		c.Next()
	}
}
