package chsource

import (
	"context"
	"errors"
	"strings"
	"testing"

	"salesboard/internal/adapters/source/schema"
	"salesboard/internal/core/facts"
	"salesboard/internal/platform/store"
)

type fakeRows struct {
	data [][]any
	i    int
}

func (r *fakeRows) Next() bool        { r.i++; return r.i <= len(r.data) }
func (r *fakeRows) Err() error        { return nil }
func (r *fakeRows) Close()            {}
func (r *fakeRows) Columns() []string { return nil }
func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.i-1]
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = row[i].(string)
		case *float64:
			*p = row[i].(float64)
		case *int32:
			*p = row[i].(int32)
		case *bool:
			*p = row[i].(bool)
		default:
			return errors.New("unsupported scan target")
		}
	}
	return nil
}

type fakeCH struct {
	execs    []string
	inserted map[string][][]any
	failExec string
}

func (f *fakeCH) Query(_ context.Context, sql string, _ ...any) (store.Rows, error) {
	for table, rows := range f.inserted {
		if strings.Contains(sql, "FROM "+table) {
			return &fakeRows{data: rows}, nil
		}
	}
	return &fakeRows{}, nil
}

func (f *fakeCH) Exec(_ context.Context, sql string, _ ...any) error {
	if f.failExec != "" && strings.Contains(sql, f.failExec) {
		return errors.New("exec failed")
	}
	f.execs = append(f.execs, sql)
	return nil
}

func (f *fakeCH) Insert(_ context.Context, table string, rows [][]any) error {
	if f.inserted == nil {
		f.inserted = map[string][][]any{}
	}
	f.inserted[table] = rows
	return nil
}

func (f *fakeCH) Close() error { return nil }

func TestSeedThenRead_RoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := &fakeCH{}
	in := facts.Tables{
		Sales: []facts.Sale{
			{OrderNumber: "SO1", ProductKey: "P1", CustomerID: "1", OrderDate: "1/7/2024", SalesAmount: 30, Quantity: 3},
		},
		Products:  []facts.Product{{Key: "P1", Name: "Bottle", Category: "Accessories", Subcategory: "Bottles", Color: "Blue"}},
		Customers: []facts.Customer{{ID: "1", FirstName: "Li", LastName: "Wu", Gender: "M", Country: "Germany", MaritalStatus: "M"}},
		Dates:     []facts.DateRow{{Date: "2024-01-07", Year: 2024, Month: 1, DayOfWeek: 0, IsWeekend: true}},
	}

	counts, err := Seed(ctx, db, in)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if counts[schema.TableSales] != 1 || counts[schema.TableDates] != 1 {
		t.Fatalf("counts = %v", counts)
	}

	src := New(db)
	sales, err := src.Sales(ctx)
	if err != nil || len(sales) != 1 || sales[0] != in.Sales[0] {
		t.Fatalf("sales = %+v err %v", sales, err)
	}
	dates, err := src.Dates(ctx)
	if err != nil || len(dates) != 1 || dates[0] != in.Dates[0] {
		t.Fatalf("dates = %+v err %v", dates, err)
	}
	products, err := src.Products(ctx)
	if err != nil || products[0] != in.Products[0] {
		t.Fatalf("products = %+v err %v", products, err)
	}
	customers, err := src.Customers(ctx)
	if err != nil || customers[0] != in.Customers[0] {
		t.Fatalf("customers = %+v err %v", customers, err)
	}
}

func TestSeed_TruncateFailure(t *testing.T) {
	t.Parallel()
	db := &fakeCH{failExec: "TRUNCATE TABLE IF EXISTS dim_product"}
	_, err := Seed(context.Background(), db, facts.Tables{})
	if err == nil || !strings.Contains(err.Error(), "truncate dim_product") {
		t.Fatalf("want truncate error, got %v", err)
	}
}
