package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/easybank/internal/pkg/constants"
	"github.com/piresc/easybank/internal/pkg/logger"
	"github.com/piresc/easybank/internal/utils"
)

// WindowCounter counts hits inside a fixed window
type WindowCounter interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	Counter WindowCounter
	Route   string        // Route group, part of the Redis key
	Limit   int           // Maximum number of requests
	Period  time.Duration // Time period for the limit
	Now     func() time.Time
}

// RateLimiterMiddleware limits requests per client IP using a Redis fixed window
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	if config.Now == nil {
		config.Now = time.Now
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf(constants.KeyRateLimit, config.Route, c.RealIP())

			count, ttl, err := config.Counter.IncrWindow(ctx, key, config.Period)
			if err != nil {
				logger.ErrorCtx(ctx, "Rate limiter unavailable",
					logger.String("route", config.Route),
					logger.Err(err))
				return utils.InternalServerErrorResponse(c, "")
			}

			remaining := int64(config.Limit) - count
			if remaining < 0 {
				remaining = 0
			}

			header := c.Response().Header()
			header.Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			header.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
			header.Set("X-RateLimit-Reset", strconv.FormatInt(config.Now().Add(ttl).Unix(), 10))

			if count > int64(config.Limit) {
				header.Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				logger.WarnCtx(ctx, "Rate limit exceeded",
					logger.String("route", config.Route),
					logger.String("client_ip", c.RealIP()))
				return utils.TooManyRequestsResponse(c)
			}

			return next(c)
		}
	}
}
