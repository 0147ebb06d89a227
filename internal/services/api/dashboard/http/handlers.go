// Package http provides http transport for the dashboard
package http

import (
	stdhttp "net/http"

	"salesboard/internal/modkit/httpkit"
	"salesboard/internal/services/api/dashboard/domain"
	svc "salesboard/internal/services/api/dashboard/service"
)

// Register mounts dashboard endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/meta", h.meta)

	// facet counts for the filter sidebar
	httpkit.PostJSON(r, "/counts", h.counts, httpkit.Optional)

	// chart series
	httpkit.PostJSON(r, "/aggregate", h.aggregate, httpkit.Optional)
	httpkit.PostJSON(r, "/matrix", h.matrix)
	httpkit.PostJSON(r, "/histogram", h.histogram, httpkit.Optional)
	httpkit.PostJSON(r, "/trend", h.trend, httpkit.Optional)
	httpkit.PostJSON(r, "/category-trend", h.categoryTrend, httpkit.Optional)
	httpkit.PostJSON(r, "/geo", h.geo, httpkit.Optional)
}

type handlers struct{ svc svc.Service }

// @Summary Dataset meta and filter catalogs
// @Tags Dashboard
// @Produce json
// @Success 200 {object} domain.MetaResponse "ok"
// @Failure 503 {object} httpkit.Envelope "dataset unavailable"
// @Router /dashboard/meta [get]
func (h *handlers) meta(r *stdhttp.Request) (any, error) {
	return h.svc.Meta(r.Context())
}

// @Summary Leave-one-out facet counts
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param payload body domain.FilterInput false "Filter"
// @Success 200 {object} domain.CountsResponse "ok"
// @Router /dashboard/counts [post]
func (h *handlers) counts(r *stdhttp.Request, in domain.FilterInput) (any, error) {
	return h.svc.Counts(r.Context(), in)
}

// @Summary Group the filtered facts by one field
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param payload body domain.AggregateInput false "Query"
// @Success 200 {array} aggregate.Group "ok"
// @Router /dashboard/aggregate [post]
func (h *handlers) aggregate(r *stdhttp.Request, in domain.AggregateInput) (any, error) {
	return h.svc.Aggregate(r.Context(), in)
}

// @Summary Dense row by column grid
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param payload body domain.MatrixInput true "Query"
// @Success 200 {object} domain.MatrixResponse "ok"
// @Router /dashboard/matrix [post]
func (h *handlers) matrix(r *stdhttp.Request, in domain.MatrixInput) (any, error) {
	return h.svc.Matrix(r.Context(), in)
}

// @Summary Fixed width histogram of a metric
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param payload body domain.HistogramInput false "Query"
// @Success 200 {object} domain.HistogramResponse "ok"
// @Router /dashboard/histogram [post]
func (h *handlers) histogram(r *stdhttp.Request, in domain.HistogramInput) (any, error) {
	return h.svc.Histogram(r.Context(), in)
}

// @Summary Daily series with an optional comparison overlay
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param payload body domain.TrendInput false "Query"
// @Success 200 {array} aggregate.TrendPoint "ok"
// @Router /dashboard/trend [post]
func (h *handlers) trend(r *stdhttp.Request, in domain.TrendInput) (any, error) {
	return h.svc.Trend(r.Context(), in)
}

// @Summary Daily revenue per category
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param payload body domain.FilterInput false "Filter"
// @Success 200 {array} aggregate.CategoryPoint "ok"
// @Router /dashboard/category-trend [post]
func (h *handlers) categoryTrend(r *stdhttp.Request, in domain.FilterInput) (any, error) {
	return h.svc.CategoryTrend(r.Context(), in)
}

// @Summary Revenue per canonical country
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param payload body domain.FilterInput false "Filter"
// @Success 200 {array} aggregate.Group "ok"
// @Router /dashboard/geo [post]
func (h *handlers) geo(r *stdhttp.Request, in domain.FilterInput) (any, error) {
	return h.svc.Geo(r.Context(), in)
}
