package csvsource

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"

	"salesboard/internal/adapters/source/schema"
	"salesboard/internal/core/facts"
)

// Source reads tables from CSV files in a filesystem
type Source struct {
	fsys fs.FS
	name string
}

var _ facts.Source = (*Source)(nil)

// New reads from the directory dir
func New(dir string) *Source {
	return &Source{fsys: os.DirFS(dir), name: dir}
}

// NewFS reads from the root of fsys
func NewFS(fsys fs.FS) *Source {
	return &Source{fsys: fsys, name: "fs"}
}

// File returns the file name holding table
func File(table string) string { return table + ".csv" }

// Check reports the first table file that is missing or unreadable
func (s *Source) Check() error {
	for _, t := range schema.Tables {
		if _, err := fs.Stat(s.fsys, File(t)); err != nil {
			return fmt.Errorf("csvsource: %s: %w", path.Join(s.name, File(t)), err)
		}
	}
	return nil
}

func (s *Source) Sales(ctx context.Context) ([]facts.Sale, error) {
	return read(ctx, s, schema.TableSales, ReadSales)
}

func (s *Source) Products(ctx context.Context) ([]facts.Product, error) {
	return read(ctx, s, schema.TableProducts, ReadProducts)
}

func (s *Source) Customers(ctx context.Context) ([]facts.Customer, error) {
	return read(ctx, s, schema.TableCustomers, ReadCustomers)
}

func (s *Source) Dates(ctx context.Context) ([]facts.DateRow, error) {
	return read(ctx, s, schema.TableDates, ReadDates)
}

func read[T any](ctx context.Context, s *Source, table string, fn func(context.Context, io.Reader) ([]T, error)) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := File(table)
	f, err := s.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("csvsource: open %s: %w", path.Join(s.name, name), err)
	}
	defer f.Close() //nolint:errcheck

	out, err := fn(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("csvsource: %s: %w", name, err)
	}
	return out, nil
}

// salesProductKeys are the accepted product key columns of fact_sales, in preference order
var salesProductKeys = []string{"prd_key", "sls_prd_key"}

// ReadSales decodes a fact_sales export
// the product key is read from prd_key, falling back to sls_prd_key
func ReadSales(ctx context.Context, r io.Reader) ([]facts.Sale, error) {
	return decode(r, schema.Required(schema.TableSales), ctx.Err, func(rec record) (facts.Sale, error) {
		amount, err := rec.float("sls_sales")
		if err != nil {
			return facts.Sale{}, err
		}
		qty, err := rec.int("sls_quantity")
		if err != nil {
			return facts.Sale{}, err
		}
		price, err := rec.float("sls_price")
		if err != nil {
			return facts.Sale{}, err
		}
		return facts.Sale{
			OrderNumber: rec.str("sls_ord_num"),
			ProductKey:  rec.first(salesProductKeys...),
			CustomerID:  rec.str("sls_cust_id"),
			OrderDate:   rec.str("sls_order_dt"),
			SalesAmount: amount,
			Quantity:    qty,
			Price:       price,
		}, nil
	}, salesProductKeys)
}

// ReadProducts decodes a dim_product export
func ReadProducts(ctx context.Context, r io.Reader) ([]facts.Product, error) {
	return decode(r, schema.Required(schema.TableProducts), ctx.Err, func(rec record) (facts.Product, error) {
		cost, err := rec.float("prd_cost")
		if err != nil {
			return facts.Product{}, err
		}
		return facts.Product{
			Key:         rec.str("prd_key"),
			Name:        rec.str("prd_nm"),
			CategoryKey: rec.str("cat_key"),
			Category:    rec.str("CAT"),
			Subcategory: rec.str("SUBCAT"),
			Cost:        cost,
			Color:       rec.first("COLOR", "prd_color"),
			Status:      rec.first("STATUS", "prd_status"),
		}, nil
	})
}

// ReadCustomers decodes a dim_customer export
func ReadCustomers(ctx context.Context, r io.Reader) ([]facts.Customer, error) {
	return decode(r, schema.Required(schema.TableCustomers), ctx.Err, func(rec record) (facts.Customer, error) {
		return facts.Customer{
			ID:            rec.str("customer_id"),
			FirstName:     rec.str("firstname"),
			LastName:      rec.str("lastname"),
			Gender:        rec.str("gender"),
			Country:       rec.str("country"),
			MaritalStatus: rec.str("marital_status"),
			BirthDate:     rec.str("birth_date"),
			Email:         rec.str("email"),
		}, nil
	})
}

// ReadDates decodes a dim_date export
func ReadDates(ctx context.Context, r io.Reader) ([]facts.DateRow, error) {
	return decode(r, schema.Required(schema.TableDates), ctx.Err, func(rec record) (facts.DateRow, error) {
		year, err := rec.int("year")
		if err != nil {
			return facts.DateRow{}, err
		}
		month, err := rec.int("month")
		if err != nil {
			return facts.DateRow{}, err
		}
		dow, err := rec.int("day_of_week")
		if err != nil {
			return facts.DateRow{}, err
		}
		weekend, err := rec.bool("is_weekend")
		if err != nil {
			return facts.DateRow{}, err
		}
		return facts.DateRow{Date: rec.str("date"), Year: year, Month: month, DayOfWeek: dow, IsWeekend: weekend}, nil
	})
}
