package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/response"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/logger"
)

// RateLimit enforces a fixed-window request limit per client IP, counted in
// Redis so the limit holds across instances. The first hit in a window
// creates the counter and stamps its expiry; requests past the limit fail
// with 429 instead of queuing.
//
// If the cache is unreachable the request is allowed through (fail-open):
// dropping legitimate traffic because Redis is down is worse than briefly
// losing the throttle.
func RateLimit(c cache.Cache, scope string, max int, window time.Duration) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ip := ctx.GetString("client_ip")
		if ip == "" {
			ip = utils.ExtractClientIP(ctx)
		}

		key := fmt.Sprintf("ratelimit:%s:%s", scope, ip)

		count, err := c.Increment(ctx.Request.Context(), key)
		if err != nil {
			logger.Warn("rate limiter unavailable, allowing request", map[string]interface{}{
				"scope": scope,
				"error": err.Error(),
			})
			ctx.Next()
			return
		}

		if count == 1 {
			if err := c.Expire(ctx.Request.Context(), key, window); err != nil {
				logger.Warn("failed to set rate limit window", map[string]interface{}{
					"scope": scope,
					"error": err.Error(),
				})
			}
		}

		if count > int64(max) {
			response.TooManyRequests(ctx, "too many requests, please try again later")
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}
