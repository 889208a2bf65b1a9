package middleware

import (
	"strconv"
	"time"

	"freshcart/internal/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics はリクエスト数と処理時間をPrometheusに記録する。endpointはルートのパターン
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			endpoint := c.Path()
			if endpoint == "" {
				endpoint = "not_found"
			}
			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)

			m.HTTPRequests.WithLabelValues(method, endpoint, status).Inc()
			m.HTTPDuration.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}
