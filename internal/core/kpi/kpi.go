// Package kpi derives headline metrics and customer roll ups from a fact slice in a single pass
package kpi

import (
	"sort"

	"salesboard/internal/core/facts"
)

// ProfitMargin is the fixed margin used to estimate product profit
const ProfitMargin = 0.20

// Summary holds the headline metrics of a slice
type Summary struct {
	TotalRevenue       float64 `json:"totalRevenue"`
	TotalOrders        int     `json:"totalOrders"`
	AOV                float64 `json:"aov"`
	TotalQuantity      int     `json:"totalQuantity"`
	RevenueGrowth      float64 `json:"revenueGrowth"`
	UniqueCustomers    int     `json:"uniqueCustomers"`
	RepeatPurchaseRate float64 `json:"repeatPurchaseRate"`
}

// DailyPoint is revenue and distinct orders on one ISO date
type DailyPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// ProductPerformance is the per product roll up
type ProductPerformance struct {
	Name         string  `json:"name"`
	Revenue      float64 `json:"revenue"`
	Quantity     int     `json:"quantity"`
	Contribution float64 `json:"contribution"`
	Profit       float64 `json:"profit"`
}

// Report is the full output of Compute
type Report struct {
	KPI         Summary              `json:"kpi"`
	Trends      []DailyPoint         `json:"trends"`
	TopProducts []ProductPerformance `json:"topProducts"`
}

type set map[string]struct{}

func (s set) add(v string) { s[v] = struct{}{} }

// Compute accumulates every metric in one pass over rows
// ratio metrics are 0 when their denominator is 0
// revenue growth compares the last two dated entries, whatever gap lies between them
func Compute(rows []facts.Fact) Report {
	var (
		revenue  float64
		quantity int
		orders   = set{}
		perCust  = map[string]set{}
		perDay   = map[string]*dayAcc{}
		prodIdx  = map[string]int{}
		products []ProductPerformance
	)

	for i := range rows {
		r := &rows[i]
		revenue += r.Revenue
		quantity += r.Quantity
		orders.add(r.OrderID)

		co, ok := perCust[r.CustomerID]
		if !ok {
			co = set{}
			perCust[r.CustomerID] = co
		}
		co.add(r.OrderID)

		j, ok := prodIdx[r.ProductName]
		if !ok {
			j = len(products)
			prodIdx[r.ProductName] = j
			products = append(products, ProductPerformance{Name: r.ProductName})
		}
		products[j].Revenue += r.Revenue
		products[j].Quantity += r.Quantity

		d, ok := perDay[r.DateStr]
		if !ok {
			d = &dayAcc{orders: set{}}
			perDay[r.DateStr] = d
		}
		d.revenue += r.Revenue
		d.orders.add(r.OrderID)
	}

	s := Summary{
		TotalRevenue:    revenue,
		TotalOrders:     len(orders),
		TotalQuantity:   quantity,
		UniqueCustomers: len(perCust),
	}
	if s.TotalOrders > 0 {
		s.AOV = revenue / float64(s.TotalOrders)
	}

	repeat := 0
	for _, o := range perCust {
		if len(o) >= 2 {
			repeat++
		}
	}
	if s.UniqueCustomers > 0 {
		s.RepeatPurchaseRate = float64(repeat) / float64(s.UniqueCustomers) * 100
	}

	trends := make([]DailyPoint, 0, len(perDay))
	for date, d := range perDay {
		trends = append(trends, DailyPoint{Date: date, Revenue: d.revenue, Orders: len(d.orders)})
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].Date < trends[j].Date })
	if n := len(trends); n >= 2 {
		s.RevenueGrowth = Growth(trends[n-1].Revenue, trends[n-2].Revenue)
	}

	for i := range products {
		p := &products[i]
		if revenue != 0 {
			p.Contribution = p.Revenue / revenue * 100
		}
		p.Profit = p.Revenue * ProfitMargin
	}
	if products == nil {
		products = []ProductPerformance{}
	}
	sort.SliceStable(products, func(i, j int) bool { return products[i].Revenue > products[j].Revenue })

	return Report{KPI: s, Trends: trends, TopProducts: products}
}

type dayAcc struct {
	revenue float64
	orders  set
}

// Growth is the percent change from prev to last, 0 when prev is not positive
func Growth(last, prev float64) float64 {
	if prev <= 0 {
		return 0
	}
	return (last - prev) / prev * 100
}
