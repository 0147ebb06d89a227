package middleware

import (
	"net/http"
	"runtime/debug"

	perr "salesboard/internal/platform/errors"
	"salesboard/internal/platform/logger"
	phttp "salesboard/internal/platform/net/http"
)

// RecoverJSON converts panics into the JSON error envelope and logs the stack
// http.ErrAbortHandler is re-panicked so the server aborts the response as intended
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler { //nolint:errorlint
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")
			phttp.RespondError(w, r, perr.PanicErrf("internal error"))
		}()
		next.ServeHTTP(w, r)
	})
}
