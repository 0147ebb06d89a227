// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"salesboard/internal/core/version"
	"salesboard/internal/modkit/httpkit"
	"salesboard/internal/modkit/module"
)

// Pinger is satisfied by backends that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Loader reports whether the dataset snapshot is cached
type Loader interface {
	Loaded() bool
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Data        Loader
	PG          any
	CH          any
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"salesboard-api"`
	Started string `json:"started" example:"2026-03-02T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
	Now     string `json:"now"     example:"2026-03-02T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"dataset"`
	Status string `json:"status" example:"ok"` // ok pending fail skipped unknown
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432 connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-03-02T13:05:00Z"`
}

// VersionResponse is the build info plus the mounted modules
type VersionResponse struct {
	version.BuildInfo
	Modules []string `json:"modules"`
}

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	now := time.Now().UTC()
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(now.Sub(h.deps.StartedAt) / time.Second),
		Now:     now.Format(time.RFC3339),
	}, nil
}

// @Summary Readiness probe with dataset and backend checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	check := func(name string, c any) ReadyCheck {
		if c == nil {
			return ReadyCheck{Name: name, Status: "skipped"}
		}
		if p, ok := c.(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				return ReadyCheck{Name: name, Status: "fail", Error: err.Error()}
			}
			return ReadyCheck{Name: name, Status: "ok"}
		}
		return ReadyCheck{Name: name, Status: "unknown"}
	}

	// a lazy dataset loads on the first query, ready never triggers it
	data := ReadyCheck{Name: "dataset", Status: "pending"}
	if h.deps.Data == nil {
		data.Status = "fail"
		data.Error = "no dataset configured"
	} else if h.deps.Data.Loaded() {
		data.Status = "ok"
	}

	checks := []ReadyCheck{data, check("pg", h.deps.PG), check("ch", h.deps.CH)}
	overall := "ok"
	for _, c := range checks {
		switch c.Status {
		case "fail":
			overall = "fail"
		case "pending", "unknown":
			if overall == "ok" {
				overall = "degraded"
			}
		}
	}

	return ReadyResponse{
		Status: overall,
		Checks: checks,
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// @Summary Build info and mounted modules
// @Tags Meta
// @Produce json
// @Success 200 {object} VersionResponse "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return VersionResponse{BuildInfo: version.Info(), Modules: module.Names()}, nil
}
