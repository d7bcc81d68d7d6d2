package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"
)

// ZapEchoMiddleware logs one line per request and annotates the New Relic transaction
func ZapEchoMiddleware(zl *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			latency := time.Since(start)

			req := c.Request()
			principal := "anonymous"
			if id := c.Get("principal_id"); id != nil {
				principal = fmt.Sprintf("%v", id)
			}
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)
			status := c.Response().Status

			txn := newrelic.FromContext(req.Context())
			if txn != nil {
				txn.AddAttribute("principal_id", principal)
				txn.AddAttribute("request_id", requestID)
				if err != nil {
					txn.NoticeError(err)
				}
			}

			l := zl.WithNewRelicContext(txn).With(
				zap.String("method", req.Method),
				zap.String("path", c.Path()),
				zap.Int("status", status),
				zap.Int64("latency_ms", latency.Milliseconds()),
				zap.String("client_ip", c.RealIP()),
				zap.String("principal_id", principal),
				zap.String("request_id", requestID),
			)
			switch {
			case status >= 500:
				l.Error("Server error", zap.Error(err))
			case status >= 400:
				l.Warn("Client error")
			default:
				l.Info("Request processed")
			}
			return err
		}
	}
}
