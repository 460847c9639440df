package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/rueidis"
)

// RedisRateLimiter is the fixed-window limiter shared across instances.
// The counter key expires with the window; EXPIRE NX runs on every
// request, so a key whose expiry was lost gets one again on the next
// hit instead of counting forever.
func RedisRateLimiter(client rueidis.Client, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf("rate_limit:%s", c.RealIP())

			count, err := client.Do(
				ctx,
				client.B().Incr().Key(key).Build(),
			).AsInt64()
			if err != nil {
				// Storage faults must not take request serving down
				// with them; let the request through.
				return next(c)
			}

			_ = client.Do(
				ctx,
				client.B().Expire().Key(key).Seconds(int64(window.Seconds())).Nx().Build(),
			).Error()

			if count > int64(limit) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			return next(c)
		}
	}
}
