// Package module wires the dashboard into the API using modkit
package module

import (
	modkit "salesboard/internal/modkit"
	"salesboard/internal/modkit/httpkit"
	str "salesboard/internal/platform/strings"
	dashhttp "salesboard/internal/services/api/dashboard/http"
	dashsvc "salesboard/internal/services/api/dashboard/service"
)

// Module implements the dashboard module
type Module struct {
	build modkit.Built
	svc   dashsvc.Service
	ports Ports
}

// New constructs the dashboard module over deps.Data
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("dashboard"), modkit.WithPrefix("/dashboard")}, opts...)...)

	svc := dashsvc.New(deps.Data)
	return &Module{build: b, svc: svc, ports: Ports{Slicer: svc}}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.build.Mount(r, func(rr httpkit.Router) { dashhttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.build.Name, "module name") }
