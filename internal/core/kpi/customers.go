package kpi

import (
	"sort"

	"salesboard/internal/core/facts"
	"salesboard/internal/core/normalize"
)

// CustomerStats is one customer's roll up over a slice
type CustomerStats struct {
	ID            string  `json:"id"`
	DisplayName   string  `json:"name"`
	Country       string  `json:"country"`
	Gender        string  `json:"gender"`
	TotalQuantity int     `json:"totalQuantity"`
	TotalRevenue  float64 `json:"totalRevenue"`
	LineItemCount int     `json:"lineItemCount"`
	OrderCount    int     `json:"orders"`
}

// Customers rolls rows up per customer id in first seen order
// display name, country and gender come from the customer's first fact
func Customers(rows []facts.Fact) []CustomerStats {
	idx := map[string]int{}
	orders := []set{}
	out := []CustomerStats{}
	for i := range rows {
		r := &rows[i]
		j, ok := idx[r.CustomerID]
		if !ok {
			j = len(out)
			idx[r.CustomerID] = j
			out = append(out, CustomerStats{
				ID:          r.CustomerID,
				DisplayName: r.CustomerName,
				Country:     r.Country,
				Gender:      r.Gender,
			})
			orders = append(orders, set{})
		}
		c := &out[j]
		c.TotalQuantity += r.Quantity
		c.TotalRevenue += r.Revenue
		c.LineItemCount++
		orders[j].add(r.OrderID)
	}
	for j := range out {
		out[j].OrderCount = len(orders[j])
	}
	return out
}

// DefaultTopCustomers is the customer list size used by callers that take no limit
const DefaultTopCustomers = 100

// TopCustomers returns the n highest revenue customers, n <= 0 keeps all
func TopCustomers(cs []CustomerStats, n int) []CustomerStats {
	out := make([]CustomerStats, len(cs))
	copy(out, cs)
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalRevenue > out[j].TotalRevenue })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// CustomerSummary is the headline view of a customer list
type CustomerSummary struct {
	TotalCustomers       int     `json:"totalCustomers"`
	TotalRevenue         float64 `json:"totalRevenue"`
	AvgCustomerValue     float64 `json:"avgCustomerValue"`
	AvgOrdersPerCustomer float64 `json:"avgOrdersPerCustomer"`
}

// Summarize totals a customer list, averages are 0 for an empty list
func Summarize(cs []CustomerStats) CustomerSummary {
	s := CustomerSummary{TotalCustomers: len(cs)}
	orders := 0
	for _, c := range cs {
		s.TotalRevenue += c.TotalRevenue
		orders += c.OrderCount
	}
	if s.TotalCustomers > 0 {
		s.AvgCustomerValue = s.TotalRevenue / float64(s.TotalCustomers)
		s.AvgOrdersPerCustomer = float64(orders) / float64(s.TotalCustomers)
	}
	return s
}

// Segment is a spending tier with its revenue and customer count
type Segment struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// Spending tier names
const (
	SegmentVIP     = "VIP (2x+avg)"
	SegmentHigh    = "High Value"
	SegmentRegular = "Regular"
	SegmentLow     = "Low Value"
)

// Segments buckets customers against the average customer value
// VIP >= 2x avg, High >= avg, Regular >= 0.5x avg, Low below; every tier is always present
func Segments(cs []CustomerStats) []Segment {
	avg := Summarize(cs).AvgCustomerValue
	out := []Segment{{Name: SegmentVIP}, {Name: SegmentHigh}, {Name: SegmentRegular}, {Name: SegmentLow}}
	for _, c := range cs {
		var i int
		switch v := c.TotalRevenue; {
		case v >= avg*2:
			i = 0
		case v >= avg:
			i = 1
		case v >= avg*0.5:
			i = 2
		default:
			i = 3
		}
		out[i].Value += c.TotalRevenue
		out[i].Count++
	}
	return out
}

// FrequencyBucket counts customers with a given order count range
type FrequencyBucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

var frequencyNames = [...]string{"1 Order", "2-3 Orders", "4-5 Orders", "6+ Orders"}

// OrderFrequency counts customers per order count bucket in bucket order, empty buckets omitted
func OrderFrequency(cs []CustomerStats) []FrequencyBucket {
	var counts [len(frequencyNames)]int
	for _, c := range cs {
		switch {
		case c.OrderCount <= 1:
			counts[0]++
		case c.OrderCount <= 3:
			counts[1]++
		case c.OrderCount <= 5:
			counts[2]++
		default:
			counts[3]++
		}
	}
	out := []FrequencyBucket{}
	for i, n := range counts {
		if n > 0 {
			out = append(out, FrequencyBucket{Name: frequencyNames[i], Value: n})
		}
	}
	return out
}

// RevenueByGender sums customer revenue per canonical gender, value descending
// Unknown is kept only when it carries revenue
func RevenueByGender(cs []CustomerStats) []Ranked {
	sums := map[string]float64{}
	var order []string
	for _, c := range cs {
		g := normalize.Gender(c.Gender)
		if _, ok := sums[g]; !ok {
			order = append(order, g)
		}
		sums[g] += c.TotalRevenue
	}
	out := []Ranked{}
	for _, g := range order {
		if g == normalize.Unknown && sums[g] <= 0 {
			continue
		}
		out = append(out, Ranked{Name: g, Value: sums[g]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}

// DefaultTopCountries is the size of the country ranking
const DefaultTopCountries = 5

// TopCountries sums customer revenue per country and keeps the n largest, n <= 0 uses DefaultTopCountries
func TopCountries(cs []CustomerStats, n int) []Ranked {
	if n <= 0 {
		n = DefaultTopCountries
	}
	idx := map[string]int{}
	var all []Ranked
	for _, c := range cs {
		j, ok := idx[c.Country]
		if !ok {
			j = len(all)
			idx[c.Country] = j
			all = append(all, Ranked{Name: c.Country})
		}
		all[j].Value += c.TotalRevenue
	}
	return topRanked(all, n)
}
