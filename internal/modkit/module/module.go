// Package module defines the contract every API area implements plus a small port registry
package module

import (
	phttp "salesboard/internal/platform/net/http"
)

// Module mounts routes and exposes ports for cross wiring
// lives apart from modkit so a module can export its own ports type without import knots
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
