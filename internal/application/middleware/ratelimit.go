package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"auth-api/pkg/log"
	"auth-api/pkg/msg"
)

// LoginLimiter decides whether a request identified by key may proceed.
// *redis.RateLimiter satisfies it.
type LoginLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// LoginRateLimit returns a middleware that throttles login attempts per
// client IP using a fixed window counter in Redis. When Redis is
// unreachable the request is allowed through rather than failing closed.
func LoginRateLimit(limiter LoginLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()

			allowed, err := limiter.Allow(c.Request().Context(), key)
			if err != nil {
				log.Warnf("Rate limiter unavailable, allowing request: %v", err)
				return next(c)
			}

			if !allowed {
				log.Warn(msg.GetMessage("auth.rate-limited", key), zap.String("client_ip", key))
				return c.JSON(http.StatusTooManyRequests, map[string]string{"error": msg.GetMessage("auth.error.too-many-attempts")})
			}

			return next(c)
		}
	}
}
