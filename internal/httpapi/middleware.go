package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/classicmodels/api/internal/metrics"
)

const requestIDHeader = "X-Request-Id"

// requestID attaches a request identifier, honoring one supplied by the
// caller so upstream proxies can correlate logs.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// requestLogger emits one structured log line per request.
func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		evt := log.Info()
		if c.Writer.Status() >= 500 {
			evt = log.Error()
		}
		evt.
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	}
}

// rateLimit applies a process-wide request budget. Zero or negative rps
// disables limiting.
func rateLimit(rps float64) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	// Fractional rates still need a burst of at least one token.
	limiter := rate.NewLimiter(rate.Limit(rps), max(1, int(rps)))
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, Response{Error: "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

// instrument records Prometheus metrics for each request. The route template
// is used as the path label to keep cardinality bounded.
func instrument() gin.HandlerFunc {
	return func(c *gin.Context) {
		done := metrics.IncInFlight()
		defer done()
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
