package middleware

import (
	"net/http"

	"salesboard/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Scope copies the chi request id and the request path onto the logger context
// and mirrors the id on the response
// it must run after RequestID
func Scope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := chimw.GetReqID(r.Context())
		if reqID != "" {
			w.Header().Set(chimw.RequestIDHeader, reqID)
		}
		ctx := logger.WithRequest(r.Context(), reqID, r.URL.Path)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
