package kpi

import (
	"fmt"
	"sort"

	"salesboard/internal/core/facts"
)

// DefaultTopN is the size of the ranked product lists
const DefaultTopN = 10

// MonthPoint is the revenue of one YYYY-MM month
type MonthPoint struct {
	Month   string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

// Ranked is a name with one summed value
type Ranked struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Monthly is the month over month view of a slice
type Monthly struct {
	Series        []MonthPoint `json:"series"`
	Growth        float64      `json:"revenueGrowth"`
	TopByRevenue  []Ranked     `json:"topProductsByRevenue"`
	TopByQuantity []Ranked     `json:"topProductsByQuantity"`
}

// MonthKey formats year and month as YYYY-MM
func MonthKey(year, month int) string { return fmt.Sprintf("%04d-%02d", year, month) }

// ComputeMonthly sums revenue per month, compares the last two months and ranks products
// topN <= 0 uses DefaultTopN
func ComputeMonthly(rows []facts.Fact, topN int) Monthly {
	if topN <= 0 {
		topN = DefaultTopN
	}

	months := map[string]float64{}
	prodIdx := map[string]int{}
	var rev, qty []Ranked
	for i := range rows {
		r := &rows[i]
		months[MonthKey(r.Year, r.Month)] += r.Revenue

		j, ok := prodIdx[r.ProductName]
		if !ok {
			j = len(rev)
			prodIdx[r.ProductName] = j
			rev = append(rev, Ranked{Name: r.ProductName})
			qty = append(qty, Ranked{Name: r.ProductName})
		}
		rev[j].Value += r.Revenue
		qty[j].Value += float64(r.Quantity)
	}

	series := make([]MonthPoint, 0, len(months))
	for m, v := range months {
		series = append(series, MonthPoint{Month: m, Revenue: v})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Month < series[j].Month })

	out := Monthly{
		Series:        series,
		TopByRevenue:  topRanked(rev, topN),
		TopByQuantity: topRanked(qty, topN),
	}
	if n := len(series); n >= 2 {
		out.Growth = Growth(series[n-1].Revenue, series[n-2].Revenue)
	}
	return out
}

func topRanked(in []Ranked, n int) []Ranked {
	out := make([]Ranked, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	if len(out) > n {
		out = out[:n]
	}
	return out
}
