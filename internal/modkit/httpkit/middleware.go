package httpkit

import (
	"net/http"
	"time"

	"salesboard/internal/platform/metrics"
	"salesboard/internal/platform/net/middleware"
)

// StackOptions tunes the per API middleware stack
type StackOptions struct {
	CORS        middleware.CORSOptions
	RateLimit   int // requests per RateWindow per client ip, <= 0 disables
	RateWindow  time.Duration
	Metrics     bool
	SlowRequest time.Duration
}

// CommonStack returns the middleware applied to every versioned API route
// process wide concerns such as request ids and recovery belong on the root router
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	var out []func(http.Handler) http.Handler
	if o.Metrics {
		out = append(out, metrics.Middleware)
	}
	out = append(out,
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.SlowRequest}),
		middleware.CORS(o.CORS),
		middleware.StripSlashes(),
	)
	if o.RateLimit > 0 {
		out = append(out, middleware.RateLimit(o.RateLimit, o.RateWindow))
	}
	return out
}
