// Package service contains performance workflows over filtered slices
package service

import (
	"context"
	"time"

	"salesboard/internal/core/facts"
	"salesboard/internal/core/kpi"
	perr "salesboard/internal/platform/errors"
	"salesboard/internal/platform/metrics"
	"salesboard/internal/services/api/performance/domain"
)

// Service defines the performance service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the performance service
type Svc struct {
	slicer domain.Slicer
}

// New constructs a performance service
func New(slicer domain.Slicer) *Svc {
	if slicer == nil {
		panic("performance.Service requires a non nil Slicer")
	}
	return &Svc{slicer: slicer}
}

// KPIs computes the headline report, topProducts is cut to in.Limit when set
func (s *Svc) KPIs(ctx context.Context, in domain.KPIInput) (kpi.Report, error) {
	rows, err := s.slicer.Slice(ctx, in.Filter)
	if err != nil {
		return kpi.Report{}, err
	}
	defer metrics.ObserveOp("kpis", time.Now())

	rep := kpi.Compute(rows)
	if in.Limit > 0 && len(rep.TopProducts) > in.Limit {
		rep.TopProducts = rep.TopProducts[:in.Limit]
	}
	return rep, nil
}

// Monthly computes the monthly series, growth and product rankings
func (s *Svc) Monthly(ctx context.Context, in domain.MonthlyInput) (kpi.Monthly, error) {
	rows, err := s.slicer.Slice(ctx, in.Filter)
	if err != nil {
		return kpi.Monthly{}, err
	}
	defer metrics.ObserveOp("monthly", time.Now())
	return kpi.ComputeMonthly(rows, in.TopN), nil
}

// Compare computes both summaries and their deltas
func (s *Svc) Compare(ctx context.Context, in domain.CompareInput) (domain.CompareResponse, error) {
	cur, base, err := s.pair(ctx, in.Filter, &in.Comparison)
	if err != nil {
		return domain.CompareResponse{}, err
	}
	defer metrics.ObserveOp("compare", time.Now())

	c, b := kpi.Compute(cur).KPI, kpi.Compute(base).KPI
	return domain.CompareResponse{Current: c, Baseline: b, Deltas: kpi.SummaryDeltas(c, b)}, nil
}

// Customers lists customers by revenue, in.Limit defaults to kpi.DefaultTopCustomers
func (s *Svc) Customers(ctx context.Context, in domain.CustomersInput) ([]kpi.CustomerStats, error) {
	rows, err := s.slicer.Slice(ctx, in.Filter)
	if err != nil {
		return nil, err
	}
	defer metrics.ObserveOp("customers", time.Now())

	n := in.Limit
	if n <= 0 {
		n = kpi.DefaultTopCustomers
	}
	return kpi.TopCustomers(kpi.Customers(rows), n), nil
}

// Insights computes the customer insight panel
func (s *Svc) Insights(ctx context.Context, in domain.InsightsInput) (domain.InsightsResponse, error) {
	cur, base, err := s.pair(ctx, in.Filter, in.Comparison)
	if err != nil {
		return domain.InsightsResponse{}, err
	}
	defer metrics.ObserveOp("insights", time.Now())

	cs := kpi.Customers(cur)
	out := domain.InsightsResponse{
		Summary:   kpi.Summarize(cs),
		Segments:  kpi.Segments(cs),
		Frequency: kpi.OrderFrequency(cs),
		Gender:    kpi.RevenueByGender(cs),
		Countries: kpi.TopCountries(cs, in.TopCountries),
	}
	if in.Comparison != nil {
		b := kpi.Summarize(kpi.Customers(base))
		out.Baseline = &b
		out.Deltas = kpi.CustomerDeltas(out.Summary, b)
	}
	return out, nil
}

// pair slices the primary filter and, when given, the comparison filter
func (s *Svc) pair(ctx context.Context, primary domain.Filter, comparison *domain.Filter) (cur, base []facts.Fact, err error) {
	if cur, err = s.slicer.Slice(ctx, primary); err != nil {
		return nil, nil, err
	}
	if comparison == nil {
		return cur, nil, nil
	}
	if base, err = s.slicer.Slice(ctx, *comparison); err != nil {
		return nil, nil, perr.WithFieldPrefix(err, domain.ComparisonField)
	}
	return cur, base, nil
}
