package aggregate

import (
	"sort"

	"salesboard/internal/core/facts"
	"salesboard/internal/core/normalize"
)

// TrendPoint is one date of a sales trend with the comparison slice overlaid
type TrendPoint struct {
	Date       string  `json:"date"`
	Value      float64 `json:"value"`
	Orders     int     `json:"orders"`
	Comparison float64 `json:"comparison"`
}

// Trend sums the metric per date for primary and comparison over the sorted union of their dates
// Orders counts distinct primary orders on that date; a side with no facts on a date reports 0
func Trend(primary, comparison []facts.Fact, metric facts.Metric) []TrendPoint {
	type acc struct {
		value, comp float64
		orders      map[string]struct{}
	}
	byDate := map[string]*acc{}
	get := func(d string) *acc {
		a, ok := byDate[d]
		if !ok {
			a = &acc{orders: map[string]struct{}{}}
			byDate[d] = a
		}
		return a
	}

	for i := range primary {
		r := &primary[i]
		a := get(r.DateStr)
		a.value += metric.Value(r)
		a.orders[r.OrderID] = struct{}{}
	}
	for i := range comparison {
		r := &comparison[i]
		get(r.DateStr).comp += metric.Value(r)
	}

	out := make([]TrendPoint, 0, len(byDate))
	for d, a := range byDate {
		out = append(out, TrendPoint{Date: d, Value: a.value, Orders: len(a.orders), Comparison: a.comp})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// CategoryPoint is the revenue of one category on one date
type CategoryPoint struct {
	Date     string  `json:"date"`
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// CategoryTrend sums revenue per (date, category), ordered by date then category
func CategoryTrend(rows []facts.Fact) []CategoryPoint {
	type key struct{ date, category string }
	idx := map[key]int{}
	out := []CategoryPoint{}
	for i := range rows {
		r := &rows[i]
		k := key{r.DateStr, r.Category}
		j, ok := idx[k]
		if !ok {
			j = len(out)
			idx[k] = j
			out = append(out, CategoryPoint{Date: r.DateStr, Category: r.Category})
		}
		out[j].Value += r.Revenue
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// Geo sums revenue per canonical country name, dropping Unknown, value descending
func Geo(rows []facts.Fact) []Group {
	idx := map[string]int{}
	out := []Group{}
	for i := range rows {
		r := &rows[i]
		name := normalize.Country(r.Country)
		if name == normalize.Unknown {
			continue
		}
		j, ok := idx[name]
		if !ok {
			j = len(out)
			idx[name] = j
			out = append(out, Group{Name: name})
		}
		out[j].Value += r.Revenue
		out[j].Count++
	}
	sortGroups(out, ByValue, Desc)
	return out
}
