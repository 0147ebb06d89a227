package domain

import (
	"context"

	"salesboard/internal/core/aggregate"
	"salesboard/internal/core/facts"
)

// Dataset hands out the shared snapshot
type Dataset interface {
	Snapshot(ctx context.Context) (*facts.Snapshot, error)
}

// SlicePort resolves a wire filter to the matching facts of the current snapshot
// other modules consume it so every area filters the same way
type SlicePort interface {
	Slice(ctx context.Context, f Filter) ([]facts.Fact, error)
}

// ServicePort is consumed by handlers
type ServicePort interface {
	SlicePort
	Meta(ctx context.Context) (MetaResponse, error)
	Counts(ctx context.Context, in FilterInput) (CountsResponse, error)
	Aggregate(ctx context.Context, in AggregateInput) ([]aggregate.Group, error)
	Matrix(ctx context.Context, in MatrixInput) (MatrixResponse, error)
	Histogram(ctx context.Context, in HistogramInput) (HistogramResponse, error)
	Trend(ctx context.Context, in TrendInput) ([]aggregate.TrendPoint, error)
	CategoryTrend(ctx context.Context, in FilterInput) ([]aggregate.CategoryPoint, error)
	Geo(ctx context.Context, in FilterInput) ([]aggregate.Group, error)
}
