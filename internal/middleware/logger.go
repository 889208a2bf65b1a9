package middleware

import (
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestLogger はリクエストごとに1行zapで出す
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			fields := []zap.Field{
				zap.Int("status", c.Response().Status),
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.String("query", redactQuery(req.URL.RawQuery)),
				zap.String("ip", c.RealIP()),
				zap.Duration("latency", time.Since(start)),
			}

			if err != nil {
				log.Error("request completed with errors", append(fields, zap.Error(err))...)
			} else {
				log.Info("request completed", fields...)
			}
			return nil
		}
	}
}

// トークンはログに残さない
func redactQuery(raw string) string {
	if raw == "" {
		return ""
	}
	q, err := url.ParseQuery(raw)
	if err != nil {
		return "[unparsed]"
	}
	if _, ok := q[QueryTokenParam]; !ok {
		return raw
	}
	q.Set(QueryTokenParam, "REDACTED")
	return q.Encode()
}
