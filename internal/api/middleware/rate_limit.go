package middleware

import (
	"time"

	"github.com/go-chi/httprate"
	"github.com/labstack/echo/v4"
)

// RateLimitByIP allows requestsPerMinute requests per client IP and answers
// 429 once the budget is used up.
func RateLimitByIP(requestsPerMinute int) echo.MiddlewareFunc {
	return echo.WrapMiddleware(httprate.LimitByIP(requestsPerMinute, time.Minute))
}
