package middleware

import (
	"net/http"
	"time"

	perr "salesboard/internal/platform/errors"
	phttp "salesboard/internal/platform/net/http"

	"github.com/go-chi/httprate"
)

// RateLimit allows requests per window for each client IP and answers the rest
// with a 429 JSON envelope. requests <= 0 disables limiting
func RateLimit(requests int, window time.Duration) func(http.Handler) http.Handler {
	if requests <= 0 || window <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(requests, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			phttp.RespondError(w, r, perr.Newf(perr.ErrorCodeTooManyRequests, "rate limit of %d per %s exceeded", requests, window))
		}),
	)
}
