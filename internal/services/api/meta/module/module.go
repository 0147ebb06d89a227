// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "salesboard/internal/modkit"
	"salesboard/internal/modkit/httpkit"
	str "salesboard/internal/platform/strings"

	"salesboard/internal/core/version"
	metahttp "salesboard/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	build     modkit.Built
	deps      metahttp.Deps
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	started := time.Now()
	d := metahttp.Deps{ServiceName: version.Service, StartedAt: started}
	if deps.Data != nil {
		d.Data = deps.Data
	}
	if deps.Store != nil {
		if deps.Store.PG != nil {
			d.PG = deps.Store.PG
		}
		if deps.Store.CH != nil {
			d.CH = deps.Store.CH
		}
	}
	return &Module{build: b, deps: d, startedAt: started}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.build.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.build.Name, "meta") }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
