package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/investasi/catalogue-api/internal/api/metrics"
)

// AttemptLimiter decides whether another attempt for a key may proceed.
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// KeyFunc derives the throttling key from the request. An empty key skips
// the limiter.
type KeyFunc func(c echo.Context) string

// ByClientIP keys the limiter on the caller's IP. The login body cannot be
// read here without consuming it for the handler, so the key is transport
// level rather than per-username.
func ByClientIP(c echo.Context) string {
	return c.RealIP()
}

// RateLimit throttles a route by the key the KeyFunc extracts. Limiter
// failures are logged and fail open: an unreachable Redis must not take the
// login endpoint down with it.
func RateLimit(limiter AttemptLimiter, key KeyFunc, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			k := key(c)
			if k == "" {
				return next(c)
			}

			ok, err := limiter.Allow(c.Request().Context(), k)
			if err != nil {
				log.Error().Err(err).Msg("rate limiter unavailable")
				return next(c)
			}
			if !ok {
				metrics.LoginThrottledTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many attempts, try again later")
			}

			return next(c)
		}
	}
}
