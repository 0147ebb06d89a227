package module

import "salesboard/internal/services/api/performance/domain"

// Ports are the ports the performance module consumes
type Ports struct {
	Slicer domain.Slicer
}

// Ports returns nil, the module lends nothing
func (m *Module) Ports() any { return nil }
