package kpi

// Delta is the change of a metric against a baseline
// Pct is nil when the baseline is 0 and a percent change is undefined
type Delta struct {
	Current  float64  `json:"current"`
	Baseline float64  `json:"baseline"`
	Diff     float64  `json:"diff"`
	Pct      *float64 `json:"pct"`
}

// Compare builds the Delta of current against baseline
func Compare(current, baseline float64) Delta {
	d := Delta{Current: current, Baseline: baseline, Diff: current - baseline}
	if baseline != 0 {
		p := d.Diff / baseline * 100
		d.Pct = &p
	}
	return d
}

// SummaryDeltas compares every headline metric of two summaries
func SummaryDeltas(current, baseline Summary) map[string]Delta {
	return map[string]Delta{
		"totalRevenue":       Compare(current.TotalRevenue, baseline.TotalRevenue),
		"totalOrders":        Compare(float64(current.TotalOrders), float64(baseline.TotalOrders)),
		"aov":                Compare(current.AOV, baseline.AOV),
		"totalQuantity":      Compare(float64(current.TotalQuantity), float64(baseline.TotalQuantity)),
		"uniqueCustomers":    Compare(float64(current.UniqueCustomers), float64(baseline.UniqueCustomers)),
		"repeatPurchaseRate": Compare(current.RepeatPurchaseRate, baseline.RepeatPurchaseRate),
	}
}

// CustomerDeltas compares two customer summaries
func CustomerDeltas(current, baseline CustomerSummary) map[string]Delta {
	return map[string]Delta{
		"totalCustomers":       Compare(float64(current.TotalCustomers), float64(baseline.TotalCustomers)),
		"totalRevenue":         Compare(current.TotalRevenue, baseline.TotalRevenue),
		"avgCustomerValue":     Compare(current.AvgCustomerValue, baseline.AvgCustomerValue),
		"avgOrdersPerCustomer": Compare(current.AvgOrdersPerCustomer, baseline.AvgOrdersPerCustomer),
	}
}
