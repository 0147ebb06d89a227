// Package swaggerkit serves the OpenAPI document and the swagger UI
package swaggerkit

import (
	_ "embed"
	"net/http"

	"salesboard/internal/core/version"
	"salesboard/internal/platform/logger"
	phttp "salesboard/internal/platform/net/http"

	"github.com/goccy/go-json"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:embed openapi.json
var document []byte

// SpecMutator lets callers tweak the parsed document before it is served
type SpecMutator func(map[string]any)

var mutators []SpecMutator

// docReader is a seam so tests can inject a broken document
var docReader = func() []byte { return document }

// Register adds a spec mutator, call it before Mount
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

// Mount serves the UI under /api/docs/ and the document at /api/docs/doc.json when enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON())
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("salesboard"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}

func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal(docReader(), &spec); err != nil {
			logger.C(r.Context()).Error().Err(err).Msg("openapi document does not parse")
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		if info, ok := spec["info"].(map[string]any); ok {
			info["version"] = version.Info().Version
		}
		if _, ok := spec["servers"]; !ok {
			spec["servers"] = []any{map[string]any{"url": "/api/v1"}}
		}
		for _, m := range mutators {
			m(spec)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}
