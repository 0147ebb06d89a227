// Package service contains dashboard workflows over the shared snapshot
package service

import (
	"context"
	"time"

	"salesboard/internal/core/aggregate"
	"salesboard/internal/core/facts"
	"salesboard/internal/core/filter"
	perr "salesboard/internal/platform/errors"
	"salesboard/internal/platform/logger"
	"salesboard/internal/platform/metrics"
	"salesboard/internal/services/api/dashboard/domain"
)

// Service defines the dashboard service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the dashboard service
type Svc struct {
	data domain.Dataset
}

// New constructs a dashboard service
func New(data domain.Dataset) *Svc {
	if data == nil {
		panic("dashboard.Service requires a non nil Dataset")
	}
	return &Svc{data: data}
}

// snapshot resolves the shared snapshot and tags ctx with its id for logging
func (s *Svc) snapshot(ctx context.Context) (context.Context, *facts.Snapshot, error) {
	snap, err := s.data.Snapshot(ctx)
	if err != nil {
		return ctx, nil, perr.WithOp(err, "dashboard.snapshot")
	}
	return logger.WithDataset(ctx, snap.ID.String()), snap, nil
}

// slice returns the facts matching f
func (s *Svc) slice(ctx context.Context, f domain.Filter) (context.Context, *facts.Snapshot, []facts.Fact, error) {
	spec, err := f.Spec()
	if err != nil {
		return ctx, nil, nil, err
	}
	ctx, snap, err := s.snapshot(ctx)
	if err != nil {
		return ctx, nil, nil, err
	}
	defer metrics.ObserveOp("filter", time.Now())
	return ctx, snap, filter.Apply(snap.Facts, spec), nil
}

// Slice returns the facts of the current snapshot matching f
func (s *Svc) Slice(ctx context.Context, f domain.Filter) ([]facts.Fact, error) {
	_, _, rows, err := s.slice(ctx, f)
	return rows, err
}

// Meta describes the snapshot and its catalogs
func (s *Svc) Meta(ctx context.Context) (domain.MetaResponse, error) {
	_, snap, err := s.snapshot(ctx)
	if err != nil {
		return domain.MetaResponse{}, err
	}
	first, last := snap.CalendarBounds()
	return domain.MetaResponse{
		SnapshotID: snap.ID.String(),
		LoadedAt:   snap.LoadedAt,
		Facts:      len(snap.Facts),
		Calendar:   domain.Calendar{First: first, Last: last, Days: len(snap.Calendar)},
		Catalog:    snap.Meta,
		Fields:     facts.FieldNames(),
	}, nil
}

// Counts computes leave-one-out value counts for every dimension
func (s *Svc) Counts(ctx context.Context, in domain.FilterInput) (domain.CountsResponse, error) {
	spec, err := in.Filter.Spec()
	if err != nil {
		return domain.CountsResponse{}, err
	}
	ctx, snap, err := s.snapshot(ctx)
	if err != nil {
		return domain.CountsResponse{}, err
	}
	defer metrics.ObserveOp("counts", time.Now())

	c := filter.Cascading(snap.Facts, spec)
	out := domain.CountsResponse{
		Categories:      c.Of(filter.Category),
		Subcategories:   c.Of(filter.Subcategory),
		Countries:       c.Of(filter.Country),
		Genders:         c.Of(filter.Gender),
		MaritalStatuses: c.Of(filter.MaritalStatus),
		Products:        c.Of(filter.Product),
		Matching:        len(filter.Apply(snap.Facts, spec)),
	}
	logger.C(ctx).Debug().Int("active", len(spec.Active())).Int("matching", out.Matching).Msg("cascading counts")
	return out, nil
}

// Aggregate groups the filtered facts by one field
func (s *Svc) Aggregate(ctx context.Context, in domain.AggregateInput) ([]aggregate.Group, error) {
	opts, err := aggregateOptions(in)
	if err != nil {
		return nil, err
	}
	_, _, rows, err := s.slice(ctx, in.Filter)
	if err != nil {
		return nil, err
	}
	defer metrics.ObserveOp("aggregate", time.Now())
	return aggregate.Aggregate(rows, opts), nil
}

// Matrix groups the filtered facts by a row and a column field
func (s *Svc) Matrix(ctx context.Context, in domain.MatrixInput) (domain.MatrixResponse, error) {
	rowBy, err := parseField(in.Rows, facts.FieldCategory, "rows")
	if err != nil {
		return domain.MatrixResponse{}, err
	}
	colBy, err := parseField(in.Columns, aggregate.SecondaryFor(rowBy), "columns")
	if err != nil {
		return domain.MatrixResponse{}, err
	}
	metric, err := parseMetric(in.Metric)
	if err != nil {
		return domain.MatrixResponse{}, err
	}
	_, _, rows, err := s.slice(ctx, in.Filter)
	if err != nil {
		return domain.MatrixResponse{}, err
	}
	defer metrics.ObserveOp("matrix", time.Now())
	return domain.MatrixResponse{
		RowField:    rowBy.String(),
		ColumnField: colBy.String(),
		Metric:      metric.String(),
		Matrix:      aggregate.AggregateMatrix(rows, rowBy, colBy, metric),
	}, nil
}

// Histogram buckets a metric of the filtered facts
func (s *Svc) Histogram(ctx context.Context, in domain.HistogramInput) (domain.HistogramResponse, error) {
	metric, err := parseMetric(in.Metric)
	if err != nil {
		return domain.HistogramResponse{}, err
	}
	width := in.BucketWidth
	if width == 0 {
		width = aggregate.DefaultBucketWidth
	}
	_, _, rows, err := s.slice(ctx, in.Filter)
	if err != nil {
		return domain.HistogramResponse{}, err
	}
	defer metrics.ObserveOp("histogram", time.Now())
	buckets, err := aggregate.Histogram(rows, metric, width)
	if err != nil {
		return domain.HistogramResponse{}, err
	}
	return domain.HistogramResponse{Metric: metric.String(), BucketWidth: width, Buckets: buckets}, nil
}

// Trend sums a metric per day for the filter and the optional comparison filter
func (s *Svc) Trend(ctx context.Context, in domain.TrendInput) ([]aggregate.TrendPoint, error) {
	metric, err := parseMetric(in.Metric)
	if err != nil {
		return nil, err
	}
	_, _, primary, err := s.slice(ctx, in.Filter)
	if err != nil {
		return nil, err
	}
	var comparison []facts.Fact
	if in.Comparison != nil {
		if _, _, comparison, err = s.slice(ctx, *in.Comparison); err != nil {
			return nil, perr.WithFieldPrefix(err, domain.ComparisonField)
		}
	}
	defer metrics.ObserveOp("trend", time.Now())
	return aggregate.Trend(primary, comparison, metric), nil
}

// CategoryTrend sums revenue per day and category
func (s *Svc) CategoryTrend(ctx context.Context, in domain.FilterInput) ([]aggregate.CategoryPoint, error) {
	_, _, rows, err := s.slice(ctx, in.Filter)
	if err != nil {
		return nil, err
	}
	defer metrics.ObserveOp("category_trend", time.Now())
	return aggregate.CategoryTrend(rows), nil
}

// Geo sums revenue per canonical country
func (s *Svc) Geo(ctx context.Context, in domain.FilterInput) ([]aggregate.Group, error) {
	_, _, rows, err := s.slice(ctx, in.Filter)
	if err != nil {
		return nil, err
	}
	defer metrics.ObserveOp("geo", time.Now())
	return aggregate.Geo(rows), nil
}

func aggregateOptions(in domain.AggregateInput) (aggregate.Options, error) {
	groupBy, err := parseField(in.GroupBy, facts.FieldCategory, "groupBy")
	if err != nil {
		return aggregate.Options{}, err
	}
	metric, err := parseMetric(in.Metric)
	if err != nil {
		return aggregate.Options{}, err
	}
	o := aggregate.Options{GroupBy: groupBy, Metric: metric, Limit: in.Limit}
	switch in.OrderBy {
	case "", "value":
	case "name":
		o.OrderBy = aggregate.ByName
	default:
		return o, perr.WithField(perr.InvalidArgf("unknown order %q", in.OrderBy), "orderBy")
	}
	switch in.OrderDirection {
	case "", "desc":
	case "asc":
		o.Direction = aggregate.Asc
	default:
		return o, perr.WithField(perr.InvalidArgf("unknown direction %q", in.OrderDirection), "orderDirection")
	}
	return o, nil
}

func parseField(name string, def facts.Field, field string) (facts.Field, error) {
	if name == "" {
		return def, nil
	}
	f, ok := facts.ParseField(name)
	if !ok {
		return 0, perr.WithField(perr.InvalidArgf("unknown field %q", name), field)
	}
	return f, nil
}

func parseMetric(name string) (facts.Metric, error) {
	if name == "" {
		return facts.MetricRevenue, nil
	}
	m, ok := facts.ParseMetric(name)
	if !ok {
		return 0, perr.WithField(perr.InvalidArgf("unknown metric %q", name), "metric")
	}
	return m, nil
}
