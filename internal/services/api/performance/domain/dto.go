// Package domain holds DTOs and ports for performance http and service contracts
package domain

import (
	"salesboard/internal/core/kpi"
	dash "salesboard/internal/services/api/dashboard/domain"
)

// Filter is the shared wire filter
type Filter = dash.Filter

// ComparisonField prefixes errors raised by the comparison filter
const ComparisonField = dash.ComparisonField

// KPIInput computes the headline report of a slice
type KPIInput struct {
	Filter Filter `json:"filter"`
	Limit  int    `json:"limit,omitempty" validate:"omitempty,min=1,max=1000" example:"10"`
}

// MonthlyInput computes the monthly view of a slice
type MonthlyInput struct {
	Filter Filter `json:"filter"`
	TopN   int    `json:"topN,omitempty" validate:"omitempty,min=1,max=100" example:"10"`
}

// CompareInput compares a slice against a baseline slice
type CompareInput struct {
	Filter     Filter `json:"filter"`
	Comparison Filter `json:"comparison"`
}

// CompareResponse carries both summaries and the per metric deltas
type CompareResponse struct {
	Current  kpi.Summary          `json:"current"`
	Baseline kpi.Summary          `json:"baseline"`
	Deltas   map[string]kpi.Delta `json:"deltas"`
}

// CustomersInput lists customers of a slice by revenue
type CustomersInput struct {
	Filter Filter `json:"filter"`
	Limit  int    `json:"limit,omitempty" validate:"omitempty,min=1,max=10000" example:"100"`
}

// InsightsInput computes customer insights with an optional baseline slice
type InsightsInput struct {
	Filter       Filter  `json:"filter"`
	Comparison   *Filter `json:"comparison,omitempty"`
	TopCountries int     `json:"topCountries,omitempty" validate:"omitempty,min=1,max=100" example:"5"`
}

// InsightsResponse is the customer insight panel
// Baseline and Deltas are set only when a comparison filter is given
type InsightsResponse struct {
	Summary   kpi.CustomerSummary   `json:"summary"`
	Segments  []kpi.Segment         `json:"segments"`
	Frequency []kpi.FrequencyBucket `json:"frequency"`
	Gender    []kpi.Ranked          `json:"revenueByGender"`
	Countries []kpi.Ranked          `json:"topCountries"`

	Baseline *kpi.CustomerSummary `json:"baseline,omitempty"`
	Deltas   map[string]kpi.Delta `json:"deltas,omitempty"`
}
