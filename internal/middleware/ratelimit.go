package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/logger"
	"github.com/BruksfildServices01/salon-booking/internal/ratelimit"
)

var ErrTooManyRequests = httperr.New(
	httperr.KindRateLimited,
	"too_many_requests",
	"Too many attempts. Please try again later.",
)

// RateLimit throttles by client IP under the given scope. Limiter
// failures let the request through.
func RateLimit(l ratelimit.Limiter, scope string, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := l.Allow(c.Request.Context(), scope+":"+c.ClientIP())
		if err != nil {
			log.Warn("rate limiter unavailable", logger.Err(err))
		}
		if !ok {
			httpresp.Abort(c, ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
