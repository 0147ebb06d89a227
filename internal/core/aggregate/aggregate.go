// Package aggregate groups facts into chart ready series
package aggregate

import (
	"sort"

	"salesboard/internal/core/facts"
)

// OrderBy selects the sort key of a group list
type OrderBy uint8

const (
	ByValue OrderBy = iota
	ByName
)

// Direction selects the sort direction of a group list
type Direction uint8

const (
	Desc Direction = iota
	Asc
)

// Options controls Aggregate; the zero value groups by category on revenue, value descending
type Options struct {
	GroupBy   facts.Field
	Metric    facts.Metric
	OrderBy   OrderBy
	Direction Direction
	Limit     int // <= 0 keeps every group
}

// Group is one bucket of an aggregation
type Group struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// Aggregate sums the metric per distinct value of the grouping field
// empty values group under "Unknown"; ties keep first seen order; Limit applies after sorting
func Aggregate(rows []facts.Fact, o Options) []Group {
	idx := map[string]int{}
	out := []Group{}
	for i := range rows {
		r := &rows[i]
		key := groupKey(o.GroupBy, r)
		j, ok := idx[key]
		if !ok {
			j = len(out)
			idx[key] = j
			out = append(out, Group{Name: key})
		}
		out[j].Value += o.Metric.Value(r)
		out[j].Count++
	}

	sortGroups(out, o.OrderBy, o.Direction)

	if o.Limit > 0 && len(out) > o.Limit {
		out = out[:o.Limit]
	}
	return out
}

func groupKey(f facts.Field, r *facts.Fact) string {
	if v := f.Value(r); v != "" {
		return v
	}
	return facts.Unknown
}

func sortGroups(gs []Group, by OrderBy, dir Direction) {
	less := func(a, b Group) bool {
		if by == ByName {
			return a.Name < b.Name
		}
		return a.Value < b.Value
	}
	sort.SliceStable(gs, func(i, j int) bool {
		if dir == Asc {
			return less(gs[i], gs[j])
		}
		return less(gs[j], gs[i])
	})
}
