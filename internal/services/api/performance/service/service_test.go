package service

import (
	"context"
	"math"
	"testing"

	"salesboard/internal/core/facts"
	"salesboard/internal/core/kpi"
	perr "salesboard/internal/platform/errors"
	"salesboard/internal/platform/testkit"
	dash "salesboard/internal/services/api/dashboard/domain"
	dashsvc "salesboard/internal/services/api/dashboard/service"
	"salesboard/internal/services/api/performance/domain"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func tables() facts.Tables {
	return facts.Tables{
		Products: []facts.Product{
			{Key: "P1", Name: "Runner", Category: "Shoes", Subcategory: "Road"},
			{Key: "P2", Name: "Tote", Category: "Bags", Subcategory: "Canvas"},
		},
		Customers: []facts.Customer{
			{ID: "C1", FirstName: "Ada", LastName: "Lee", Gender: "M", Country: "USA"},
			{ID: "C2", FirstName: "Bo", LastName: "Kim", Gender: "F", Country: "Germany"},
			{ID: "C3", FirstName: "Cy", LastName: "Ng", Gender: "", Country: "France"},
		},
		Sales: []facts.Sale{
			{OrderNumber: "A", ProductKey: "P1", CustomerID: "C1", OrderDate: "1/14/2023", SalesAmount: 100, Quantity: 2},
			{OrderNumber: "A", ProductKey: "P2", CustomerID: "C1", OrderDate: "1/14/2023", SalesAmount: 50, Quantity: 1},
			{OrderNumber: "B", ProductKey: "P1", CustomerID: "C2", OrderDate: "2/15/2023", SalesAmount: 100, Quantity: 2},
			{OrderNumber: "C", ProductKey: "P2", CustomerID: "C2", OrderDate: "2/16/2023", SalesAmount: 60, Quantity: 3},
			{OrderNumber: "D", ProductKey: "P2", CustomerID: "C3", OrderDate: "2/17/2023", SalesAmount: 10, Quantity: 1},
		},
	}
}

func newSvc() *Svc {
	return New(dashsvc.New(facts.Preloaded(facts.Build(tables()))))
}

func TestNew_RequiresSlicer(t *testing.T) {
	t.Parallel()
	testkit.MustPanic(t, func() { New(nil) })
}

func TestKPIs(t *testing.T) {
	t.Parallel()

	rep, err := newSvc().KPIs(context.Background(), domain.KPIInput{Limit: 1})
	if err != nil {
		t.Fatalf("KPIs: %v", err)
	}
	k := rep.KPI
	if k.TotalRevenue != 320 || k.TotalOrders != 4 || k.UniqueCustomers != 3 || k.TotalQuantity != 9 {
		t.Fatalf("kpi = %+v", k)
	}
	if !near(k.AOV*float64(k.TotalOrders), k.TotalRevenue) {
		t.Fatalf("aov %v inconsistent", k.AOV)
	}
	// only C2 has two distinct orders
	if !near(k.RepeatPurchaseRate, 100.0/3) {
		t.Fatalf("repeat rate = %v", k.RepeatPurchaseRate)
	}
	if len(rep.TopProducts) != 1 || rep.TopProducts[0].Name != "Runner" {
		t.Fatalf("top products = %+v", rep.TopProducts)
	}
}

func TestMonthly(t *testing.T) {
	t.Parallel()

	m, err := newSvc().Monthly(context.Background(), domain.MonthlyInput{TopN: 1})
	if err != nil {
		t.Fatalf("Monthly: %v", err)
	}
	if len(m.Series) != 2 || m.Series[0].Month != "2023-01" || m.Series[1].Revenue != 170 {
		t.Fatalf("series = %+v", m.Series)
	}
	if !near(m.Growth, (170.0-150)/150*100) {
		t.Fatalf("growth = %v", m.Growth)
	}
	if len(m.TopByQuantity) != 1 || m.TopByQuantity[0].Name != "Tote" {
		t.Fatalf("top by quantity = %+v", m.TopByQuantity)
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	in := domain.CompareInput{
		Filter:     dash.Filter{Category: dash.Select("Shoes")},
		Comparison: dash.Filter{Category: dash.Select("Hats")},
	}
	out, err := newSvc().Compare(context.Background(), in)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if out.Current.TotalRevenue != 200 || out.Baseline.TotalRevenue != 0 {
		t.Fatalf("summaries = %+v / %+v", out.Current, out.Baseline)
	}
	d := out.Deltas["totalRevenue"]
	if d.Diff != 200 || d.Pct != nil {
		t.Fatalf("delta against zero baseline = %+v", d)
	}
}

func TestCustomers(t *testing.T) {
	t.Parallel()
	s := newSvc()

	all, err := s.Customers(context.Background(), domain.CustomersInput{})
	if err != nil {
		t.Fatalf("Customers: %v", err)
	}
	if len(all) != 3 || all[0].ID != "C2" || all[0].OrderCount != 2 || all[0].LineItemCount != 2 {
		t.Fatalf("customers = %+v", all)
	}

	top, _ := s.Customers(context.Background(), domain.CustomersInput{Limit: 1})
	if len(top) != 1 {
		t.Fatalf("limit ignored: %d", len(top))
	}
}

func TestInsights(t *testing.T) {
	t.Parallel()

	cmp := dash.Filter{Country: dash.Select("USA")}
	out, err := newSvc().Insights(context.Background(), domain.InsightsInput{Comparison: &cmp, TopCountries: 2})
	if err != nil {
		t.Fatalf("Insights: %v", err)
	}
	if out.Summary.TotalCustomers != 3 || !near(out.Summary.TotalRevenue, 320) {
		t.Fatalf("summary = %+v", out.Summary)
	}
	if len(out.Segments) != 4 {
		t.Fatalf("segments = %+v", out.Segments)
	}
	if len(out.Frequency) != 2 || out.Frequency[0].Name != "1 Order" || out.Frequency[0].Value != 2 {
		t.Fatalf("frequency = %+v", out.Frequency)
	}
	if len(out.Countries) != 2 || out.Countries[0].Name != "Germany" {
		t.Fatalf("countries = %+v", out.Countries)
	}
	var unknown bool
	for _, g := range out.Gender {
		unknown = unknown || g.Name == "Unknown"
	}
	if !unknown {
		t.Fatalf("revenue of a blank gender should land in Unknown: %+v", out.Gender)
	}
	if out.Baseline == nil || out.Baseline.TotalCustomers != 1 {
		t.Fatalf("baseline = %+v", out.Baseline)
	}
	if d := out.Deltas["totalCustomers"]; d.Diff != 2 || d.Pct == nil || !near(*d.Pct, 200) {
		t.Fatalf("deltas = %+v", out.Deltas)
	}
}

func TestInsights_NoComparison(t *testing.T) {
	t.Parallel()

	out, err := newSvc().Insights(context.Background(), domain.InsightsInput{})
	if err != nil {
		t.Fatalf("Insights: %v", err)
	}
	if out.Baseline != nil || out.Deltas != nil {
		t.Fatalf("baseline should be absent: %+v", out)
	}
	if len(out.Countries) != 3 || len(out.Countries) > kpi.DefaultTopCountries {
		t.Fatalf("countries = %+v", out.Countries)
	}
}

func TestComparisonErrorsNameTheField(t *testing.T) {
	t.Parallel()

	bad := "soon"
	_, err := newSvc().Compare(context.Background(), domain.CompareInput{Comparison: dash.Filter{DateRange: []*string{&bad}}})
	if e, ok := perr.As(err); !ok || e.Field() != "comparison.dateRange" {
		t.Fatalf("err = %v", err)
	}
}
