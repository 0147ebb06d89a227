package service

import (
	"context"
	"errors"
	"testing"

	"salesboard/internal/core/facts"
	perr "salesboard/internal/platform/errors"
	"salesboard/internal/platform/testkit"
	"salesboard/internal/services/api/dashboard/domain"
)

// three line items over two orders: Shoes 200, Bags 50
func scenario() *facts.Snapshot {
	return facts.Build(facts.Tables{
		Products: []facts.Product{
			{Key: "P1", Name: "Runner", Category: "Shoes", Subcategory: "Road"},
			{Key: "P2", Name: "Tote", Category: "Bags", Subcategory: "Canvas", Color: "Blue"},
		},
		Customers: []facts.Customer{
			{ID: "C1", FirstName: "Ada", LastName: "Lee", Gender: "M", Country: "USA", MaritalStatus: "M"},
			{ID: "C2", FirstName: "Bo", LastName: "Kim", Gender: "F", Country: "Germany"},
		},
		Sales: []facts.Sale{
			{OrderNumber: "A", ProductKey: "P1", CustomerID: "C1", OrderDate: "3/14/2023", SalesAmount: 100, Quantity: 2},
			{OrderNumber: "A", ProductKey: "P2", CustomerID: "C1", OrderDate: "3/14/2023", SalesAmount: 50, Quantity: 1},
			{OrderNumber: "B", ProductKey: "P1", CustomerID: "C2", OrderDate: "3/15/2023", SalesAmount: 100, Quantity: 2},
		},
		Dates: []facts.DateRow{{Date: "2023-03-14", Year: 2023, Month: 3, DayOfWeek: 2}, {Date: "2023-03-15", Year: 2023, Month: 3, DayOfWeek: 3}},
	})
}

func newSvc() *Svc { return New(facts.Preloaded(scenario())) }

type failing struct{}

func (failing) Snapshot(context.Context) (*facts.Snapshot, error) {
	return nil, perr.Wrap(errors.New("connection refused"), perr.ErrorCodeUnavailable, "load dataset")
}

func TestNew_RequiresDataset(t *testing.T) {
	t.Parallel()
	testkit.MustPanic(t, func() { New(nil) })
}

func TestMeta(t *testing.T) {
	t.Parallel()

	m, err := newSvc().Meta(context.Background())
	if err != nil {
		t.Fatalf("Meta: %v", err)
	}
	if m.Facts != 3 || m.SnapshotID == "" {
		t.Fatalf("meta = %+v", m)
	}
	if m.Calendar.First != "2023-03-14" || m.Calendar.Last != "2023-03-15" || m.Calendar.Days != 2 {
		t.Fatalf("calendar = %+v", m.Calendar)
	}
	if len(m.Catalog.Categories) != 2 || m.Catalog.Categories[0] != "Bags" {
		t.Fatalf("categories = %v", m.Catalog.Categories)
	}
	if len(m.Fields) != 12 {
		t.Fatalf("groupable = %v", m.Fields)
	}
}

func TestCounts_LeaveOneOut(t *testing.T) {
	t.Parallel()

	in := domain.FilterInput{Filter: domain.Filter{Category: domain.Select("Shoes")}}
	c, err := newSvc().Counts(context.Background(), in)
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if c.Categories["Shoes"] != 2 || c.Categories["Bags"] != 1 {
		t.Fatalf("categories = %v", c.Categories)
	}
	if c.Countries["USA"] != 1 || c.Countries["Germany"] != 1 {
		t.Fatalf("countries = %v", c.Countries)
	}
	if c.Matching != 2 {
		t.Fatalf("matching = %d", c.Matching)
	}
}

func TestAggregate(t *testing.T) {
	t.Parallel()
	s := newSvc()
	ctx := context.Background()

	got, err := s.Aggregate(ctx, domain.AggregateInput{})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Shoes" || got[0].Value != 200 || got[1].Name != "Bags" || got[1].Value != 50 {
		t.Fatalf("groups = %+v", got)
	}

	got, err = s.Aggregate(ctx, domain.AggregateInput{GroupBy: "color", Metric: "quantity", OrderBy: "name", OrderDirection: "asc", Limit: 1})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Blue" || got[0].Value != 1 {
		t.Fatalf("color groups = %+v", got)
	}

	_, err = s.Aggregate(ctx, domain.AggregateInput{GroupBy: "shoeSize"})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("unknown field err = %v", err)
	}
}

func TestMatrix_DefaultColumns(t *testing.T) {
	t.Parallel()

	m, err := newSvc().Matrix(context.Background(), domain.MatrixInput{Rows: "gender"})
	if err != nil {
		t.Fatalf("Matrix: %v", err)
	}
	if m.ColumnField != "category" || m.Metric != "revenue" {
		t.Fatalf("matrix fields = %q %q", m.ColumnField, m.Metric)
	}
	if len(m.Columns) != 2 || m.Columns[0] != "Bags" {
		t.Fatalf("columns = %v", m.Columns)
	}
	for _, row := range m.Rows {
		if len(row.Cells) != len(m.Columns) {
			t.Fatalf("row %s is not dense: %v", row.Name, row.Cells)
		}
	}
	if m.Cell(m.Rows[0], "Shoes") != 100 || m.Cell(m.Rows[1], "Bags") != 0 {
		t.Fatalf("cells = %+v", m.Rows)
	}
}

func TestHistogram(t *testing.T) {
	t.Parallel()
	s := newSvc()

	h, err := s.Histogram(context.Background(), domain.HistogramInput{})
	if err != nil {
		t.Fatalf("Histogram: %v", err)
	}
	if h.BucketWidth != 200 || len(h.Buckets) != 1 || h.Buckets[0].Value != 3 {
		t.Fatalf("histogram = %+v", h)
	}

	h, err = s.Histogram(context.Background(), domain.HistogramInput{BucketWidth: 60})
	if err != nil {
		t.Fatalf("Histogram: %v", err)
	}
	if len(h.Buckets) != 2 || h.Buckets[0].Name != "0-60" || h.Buckets[1].Value != 2 {
		t.Fatalf("buckets = %+v", h.Buckets)
	}
}

func TestTrend_Comparison(t *testing.T) {
	t.Parallel()

	in := domain.TrendInput{
		Filter:     domain.Filter{Gender: domain.Select("M")},
		Comparison: &domain.Filter{Gender: domain.Select("F")},
	}
	pts, err := newSvc().Trend(context.Background(), in)
	if err != nil {
		t.Fatalf("Trend: %v", err)
	}
	if len(pts) != 2 {
		t.Fatalf("points = %+v", pts)
	}
	if pts[0].Value != 150 || pts[0].Orders != 1 || pts[0].Comparison != 0 {
		t.Fatalf("day one = %+v", pts[0])
	}
	if pts[1].Value != 0 || pts[1].Comparison != 100 {
		t.Fatalf("day two = %+v", pts[1])
	}

	bad := "yesterday"
	in.Comparison = &domain.Filter{DateRange: []*string{&bad}}
	_, err = newSvc().Trend(context.Background(), in)
	if e, ok := perr.As(err); !ok || e.Field() != "comparison.dateRange" {
		t.Fatalf("comparison err = %v", err)
	}
}

func TestCategoryTrendAndGeo(t *testing.T) {
	t.Parallel()
	s := newSvc()
	ctx := context.Background()

	ct, err := s.CategoryTrend(ctx, domain.FilterInput{})
	if err != nil {
		t.Fatalf("CategoryTrend: %v", err)
	}
	if len(ct) != 3 || ct[0].Category != "Bags" || ct[0].Date != "2023-03-14" {
		t.Fatalf("category trend = %+v", ct)
	}

	geo, err := s.Geo(ctx, domain.FilterInput{})
	if err != nil {
		t.Fatalf("Geo: %v", err)
	}
	if len(geo) != 2 || geo[0].Name != "United States" || geo[0].Value != 150 {
		t.Fatalf("geo = %+v", geo)
	}
}

func TestEmptySliceIsNotAnError(t *testing.T) {
	t.Parallel()

	in := domain.Filter{Country: domain.Select()}
	rows, err := newSvc().Slice(context.Background(), in)
	if err != nil || len(rows) != 0 {
		t.Fatalf("slice = %d %v", len(rows), err)
	}
	groups, err := newSvc().Aggregate(context.Background(), domain.AggregateInput{Filter: in})
	if err != nil || groups == nil || len(groups) != 0 {
		t.Fatalf("groups = %v %v", groups, err)
	}
}

func TestDatasetFailure(t *testing.T) {
	t.Parallel()
	s := New(failing{})

	_, err := s.Meta(context.Background())
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("Meta err = %v", err)
	}
	_, err = s.Counts(context.Background(), domain.FilterInput{})
	if perr.HTTPStatus(err) != 503 {
		t.Fatalf("Counts status = %d", perr.HTTPStatus(err))
	}
}
