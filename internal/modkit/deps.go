// Package modkit provides module wiring and core deps
package modkit

import (
	"context"

	"salesboard/internal/core/facts"
	"salesboard/internal/platform/config"
	"salesboard/internal/platform/logger"
	"salesboard/internal/platform/store"
)

// Snapshots hands out the shared joined dataset
// facts.Handle is the production implementation
type Snapshots interface {
	Snapshot(ctx context.Context) (*facts.Snapshot, error)
	Loaded() bool
}

// Deps holds core dependencies passed to modules
type Deps struct {
	Log   logger.Logger
	Cfg   config.Conf
	Store *store.Store // nil when the dataset comes from csv
	Data  Snapshots
}
