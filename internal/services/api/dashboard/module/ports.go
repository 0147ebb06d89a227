package module

import "salesboard/internal/services/api/dashboard/domain"

// Ports is what the dashboard lends to other modules
type Ports struct {
	Slicer domain.SlicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
