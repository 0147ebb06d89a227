// Package http provides http transport for performance reports
package http

import (
	stdhttp "net/http"

	"salesboard/internal/modkit/httpkit"
	"salesboard/internal/services/api/performance/domain"
	svc "salesboard/internal/services/api/performance/service"
)

// Register mounts performance endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON(r, "/kpis", h.kpis, httpkit.Optional)
	httpkit.PostJSON(r, "/monthly", h.monthly, httpkit.Optional)
	httpkit.PostJSON(r, "/compare", h.compare)

	httpkit.PostJSON(r, "/customers", h.customers, httpkit.Optional)
	httpkit.PostJSON(r, "/customers/insights", h.insights, httpkit.Optional)
}

type handlers struct{ svc svc.Service }

// @Summary Headline KPIs, daily trend and product performance
// @Tags Performance
// @Accept json
// @Produce json
// @Param payload body domain.KPIInput false "Query"
// @Success 200 {object} kpi.Report "ok"
// @Router /performance/kpis [post]
func (h *handlers) kpis(r *stdhttp.Request, in domain.KPIInput) (any, error) {
	return h.svc.KPIs(r.Context(), in)
}

// @Summary Monthly revenue, growth and top products
// @Tags Performance
// @Accept json
// @Produce json
// @Param payload body domain.MonthlyInput false "Query"
// @Success 200 {object} kpi.Monthly "ok"
// @Router /performance/monthly [post]
func (h *handlers) monthly(r *stdhttp.Request, in domain.MonthlyInput) (any, error) {
	return h.svc.Monthly(r.Context(), in)
}

// @Summary KPI deltas of a slice against a baseline slice
// @Tags Performance
// @Accept json
// @Produce json
// @Param payload body domain.CompareInput true "Query"
// @Success 200 {object} domain.CompareResponse "ok"
// @Router /performance/compare [post]
func (h *handlers) compare(r *stdhttp.Request, in domain.CompareInput) (any, error) {
	return h.svc.Compare(r.Context(), in)
}

// @Summary Customers by revenue
// @Tags Performance
// @Accept json
// @Produce json
// @Param payload body domain.CustomersInput false "Query"
// @Success 200 {array} kpi.CustomerStats "ok"
// @Router /performance/customers [post]
func (h *handlers) customers(r *stdhttp.Request, in domain.CustomersInput) (any, error) {
	return h.svc.Customers(r.Context(), in)
}

// @Summary Customer segments, frequency, gender and country mix
// @Tags Performance
// @Accept json
// @Produce json
// @Param payload body domain.InsightsInput false "Query"
// @Success 200 {object} domain.InsightsResponse "ok"
// @Router /performance/customers/insights [post]
func (h *handlers) insights(r *stdhttp.Request, in domain.InsightsInput) (any, error) {
	return h.svc.Insights(r.Context(), in)
}
