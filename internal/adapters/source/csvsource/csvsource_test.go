package csvsource

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"salesboard/internal/core/facts"
)

const (
	salesCSV = "\ufeffsls_ord_num,prd_key,sls_cust_id,sls_order_dt,sls_sales,sls_quantity,sls_price\n" +
		"SO1,P1,11000,3/14/2023,100,2,50\n" +
		"\n" +
		"SO2, P2 ,11001,3/15/2023,49.99,1.0,\n"
	productsCSV = "prd_key,prd_nm,cat_key,CAT,SUBCAT,prd_cost\n" +
		"P1,Road  Bike,C1,Bikes,Road,10.5\n" +
		"P2,Helmet,C2,Accessories,Helmets,\n"
	customersCSV = "customer_id,firstname,lastname,gender,country,marital_status,birth_date,email\n" +
		"11000,Jon,Yang,M,Australia,M,1971-10-06,jon@example.com\n" +
		"11001,Eugene,Huang,F,,,1976-05-10,\n"
	datesCSV = "date,year,month,day_of_week,is_weekend\n" +
		"2023-03-14,2023,3,2,false\n" +
		"2023-03-18,2023,3,6,TRUE\n"
)

func fixtureFS() fstest.MapFS {
	return fstest.MapFS{
		"fact_sales.csv":   {Data: []byte(salesCSV)},
		"dim_product.csv":  {Data: []byte(productsCSV)},
		"dim_customer.csv": {Data: []byte(customersCSV)},
		"dim_date.csv":     {Data: []byte(datesCSV)},
	}
}

func TestSource_ReadsEveryTable(t *testing.T) {
	t.Parallel()
	src := NewFS(fixtureFS())
	ctx := context.Background()

	if err := src.Check(); err != nil {
		t.Fatalf("check: %v", err)
	}

	sales, err := src.Sales(ctx)
	if err != nil {
		t.Fatalf("sales: %v", err)
	}
	if len(sales) != 2 {
		t.Fatalf("want 2 sales (blank line skipped), got %d", len(sales))
	}
	want := facts.Sale{OrderNumber: "SO2", ProductKey: "P2", CustomerID: "11001", OrderDate: "3/15/2023", SalesAmount: 49.99, Quantity: 1}
	if sales[1] != want {
		t.Fatalf("sale[1] = %+v, want %+v", sales[1], want)
	}

	products, err := src.Products(ctx)
	if err != nil {
		t.Fatalf("products: %v", err)
	}
	if products[0].Name != "Road Bike" || products[0].Cost != 10.5 {
		t.Fatalf("product[0] = %+v", products[0])
	}
	if products[1].Color != "" || products[1].Status != "" {
		t.Fatalf("optional columns should stay empty for the joiner to default, got %+v", products[1])
	}

	customers, err := src.Customers(ctx)
	if err != nil {
		t.Fatalf("customers: %v", err)
	}
	if customers[1].Country != "" || customers[1].MaritalStatus != "" || customers[0].Email != "jon@example.com" {
		t.Fatalf("customers = %+v", customers)
	}

	dates, err := src.Dates(ctx)
	if err != nil {
		t.Fatalf("dates: %v", err)
	}
	if dates[0].IsWeekend || !dates[1].IsWeekend || dates[1].DayOfWeek != 6 {
		t.Fatalf("dates = %+v", dates)
	}
}

func TestSource_JoinsThroughSnapshot(t *testing.T) {
	t.Parallel()
	snap, err := facts.Load(context.Background(), NewFS(fixtureFS()))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(snap.Facts) != 2 {
		t.Fatalf("want 2 facts, got %d", len(snap.Facts))
	}
	if snap.Facts[1].Country != facts.Unknown {
		t.Fatalf("empty country should join as %q, got %q", facts.Unknown, snap.Facts[1].Country)
	}
}

func TestReadSales_FallsBackToSalesProductKey(t *testing.T) {
	t.Parallel()
	in := "sls_ord_num,sls_prd_key,sls_cust_id,sls_order_dt,sls_sales,sls_quantity\nSO1,BK-1,1,1/2/2023,5,1\n"
	got, err := ReadSales(context.Background(), strings.NewReader(in))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got[0].ProductKey != "BK-1" {
		t.Fatalf("product key = %q", got[0].ProductKey)
	}
}

func TestReadErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cases := []struct {
		name, in, want string
	}{
		{"empty", "", "missing header row"},
		{"missing column", "sls_ord_num,prd_key\nSO1,P1\n", "missing columns"},
		{"bad number", "sls_ord_num,prd_key,sls_cust_id,sls_order_dt,sls_sales,sls_quantity\nSO1,P1,1,1/2/2023,abc,1\n", `value "abc"`},
		{"fractional quantity", "sls_ord_num,prd_key,sls_cust_id,sls_order_dt,sls_sales,sls_quantity\nSO1,P1,1,1/2/2023,1,1.5\n", "not an integer"},
		{"nan amount", "sls_ord_num,prd_key,sls_cust_id,sls_order_dt,sls_sales,sls_quantity\nSO1,P1,1,1/2/2023,NaN,1\n", "not a finite number"},
		{"infinite price", "sls_ord_num,prd_key,sls_cust_id,sls_order_dt,sls_sales,sls_quantity,sls_price\nSO1,P1,1,1/2/2023,1,1,-Inf\n", "not a finite number"},
		{"infinite quantity", "sls_ord_num,prd_key,sls_cust_id,sls_order_dt,sls_sales,sls_quantity\nSO1,P1,1,1/2/2023,1,+Inf\n", "not a finite number"},
		{"no product key", "sls_ord_num,sls_cust_id,sls_order_dt,sls_sales,sls_quantity\nSO1,1,1/2/2023,1,1\n", "missing columns prd_key or sls_prd_key"},
		{"no product key and no rows", "sls_ord_num,sls_cust_id,sls_order_dt,sls_sales,sls_quantity\n", "missing columns prd_key or sls_prd_key"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ReadSales(ctx, strings.NewReader(tc.in))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("want error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestReadProducts_NonFiniteCost(t *testing.T) {
	t.Parallel()
	in := "prd_key,prd_nm,CAT,SUBCAT,prd_cost\nP1,Bike,Bikes,Road,nan\n"
	if _, err := ReadProducts(context.Background(), strings.NewReader(in)); err == nil || !strings.Contains(err.Error(), "column prd_cost") {
		t.Fatalf("want prd_cost cell error, got %v", err)
	}
}

func TestReadDates_BadBoolean(t *testing.T) {
	t.Parallel()
	_, err := ReadDates(context.Background(), strings.NewReader("date,is_weekend\n2023-01-01,maybe\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("want line numbered error, got %v", err)
	}
}

func TestSource_MissingFile(t *testing.T) {
	t.Parallel()
	fsys := fixtureFS()
	delete(fsys, "dim_date.csv")
	src := NewFS(fsys)

	if err := src.Check(); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("check: want ErrNotExist, got %v", err)
	}
	if _, err := src.Dates(context.Background()); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("dates: want ErrNotExist, got %v", err)
	}
}

func TestSource_CanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewFS(fixtureFS()).Sales(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
