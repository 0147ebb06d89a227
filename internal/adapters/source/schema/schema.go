// Package schema names the four source tables, their columns and row encodings
// shared by every source and seeder
package schema

import "salesboard/internal/core/facts"

// Table names, also the CSV file stems
const (
	TableSales     = "fact_sales"
	TableProducts  = "dim_product"
	TableCustomers = "dim_customer"
	TableDates     = "dim_date"
)

// Tables lists every table in load order
var Tables = []string{TableSales, TableProducts, TableCustomers, TableDates}

// Column lists in storage order
var (
	SalesColumns    = []string{"sls_ord_num", "prd_key", "sls_cust_id", "sls_order_dt", "sls_sales", "sls_quantity", "sls_price"}
	ProductColumns  = []string{"prd_key", "prd_nm", "cat_key", "CAT", "SUBCAT", "prd_cost", "COLOR", "STATUS"}
	CustomerColumns = []string{"customer_id", "firstname", "lastname", "gender", "country", "marital_status", "birth_date", "email"}
	DateColumns     = []string{"date", "year", "month", "day_of_week", "is_weekend"}
)

var columnsByTable = map[string][]string{
	TableSales:     SalesColumns,
	TableProducts:  ProductColumns,
	TableCustomers: CustomerColumns,
	TableDates:     DateColumns,
}

var requiredByTable = map[string][]string{
	TableSales:     {"sls_ord_num", "sls_cust_id", "sls_order_dt", "sls_sales", "sls_quantity"},
	TableProducts:  {"prd_key", "prd_nm", "CAT", "SUBCAT"},
	TableCustomers: {"customer_id", "firstname", "lastname", "gender", "country"},
	TableDates:     {"date"},
}

// Columns returns the storage column list of table
func Columns(table string) []string { return columnsByTable[table] }

// Required returns the columns a CSV export must carry for table
func Required(table string) []string { return requiredByTable[table] }

// SaleRow encodes s in SalesColumns order
func SaleRow(s facts.Sale) []any {
	return []any{s.OrderNumber, s.ProductKey, s.CustomerID, s.OrderDate, s.SalesAmount, int32(s.Quantity), s.Price}
}

// ProductRow encodes p in ProductColumns order
func ProductRow(p facts.Product) []any {
	return []any{p.Key, p.Name, p.CategoryKey, p.Category, p.Subcategory, p.Cost, p.Color, p.Status}
}

// CustomerRow encodes c in CustomerColumns order
func CustomerRow(c facts.Customer) []any {
	return []any{c.ID, c.FirstName, c.LastName, c.Gender, c.Country, c.MaritalStatus, c.BirthDate, c.Email}
}

// DateRowValues encodes d in DateColumns order
func DateRowValues(d facts.DateRow) []any {
	return []any{d.Date, int32(d.Year), int32(d.Month), int32(d.DayOfWeek), d.IsWeekend}
}

// Rows encodes every table of t keyed by table name
func Rows(t facts.Tables) map[string][][]any {
	out := map[string][][]any{
		TableSales:     make([][]any, 0, len(t.Sales)),
		TableProducts:  make([][]any, 0, len(t.Products)),
		TableCustomers: make([][]any, 0, len(t.Customers)),
		TableDates:     make([][]any, 0, len(t.Dates)),
	}
	for _, s := range t.Sales {
		out[TableSales] = append(out[TableSales], SaleRow(s))
	}
	for _, p := range t.Products {
		out[TableProducts] = append(out[TableProducts], ProductRow(p))
	}
	for _, c := range t.Customers {
		out[TableCustomers] = append(out[TableCustomers], CustomerRow(c))
	}
	for _, d := range t.Dates {
		out[TableDates] = append(out[TableDates], DateRowValues(d))
	}
	return out
}
