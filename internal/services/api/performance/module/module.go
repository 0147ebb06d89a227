// Package module wires performance reports into the API using modkit
package module

import (
	modkit "salesboard/internal/modkit"
	"salesboard/internal/modkit/httpkit"
	str "salesboard/internal/platform/strings"
	perfhttp "salesboard/internal/services/api/performance/http"
	perfsvc "salesboard/internal/services/api/performance/service"
)

// Module implements the performance module
type Module struct {
	build modkit.Built
	svc   perfsvc.Service
}

// New constructs the performance module
// the dashboard Slicer must be injected with modkit.WithPorts(Ports{...})
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("performance"), modkit.WithPrefix("/performance")}, opts...)...)

	p, ok := b.Ports.(Ports)
	if !ok || p.Slicer == nil {
		panic("performance module requires Ports.Slicer")
	}
	return &Module{build: b, svc: perfsvc.New(p.Slicer)}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.build.Mount(r, func(rr httpkit.Router) { perfhttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.build.Name, "module name") }
