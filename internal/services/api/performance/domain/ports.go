package domain

import (
	"context"

	"salesboard/internal/core/kpi"
	dash "salesboard/internal/services/api/dashboard/domain"
)

// Slicer resolves filters to facts, lent by the dashboard module
type Slicer = dash.SlicePort

// ServicePort is consumed by handlers
type ServicePort interface {
	KPIs(ctx context.Context, in KPIInput) (kpi.Report, error)
	Monthly(ctx context.Context, in MonthlyInput) (kpi.Monthly, error)
	Compare(ctx context.Context, in CompareInput) (CompareResponse, error)
	Customers(ctx context.Context, in CustomersInput) ([]kpi.CustomerStats, error)
	Insights(ctx context.Context, in InsightsInput) (InsightsResponse, error)
}
