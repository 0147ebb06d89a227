// Package chsource reads and seeds the four source tables in clickhouse
package chsource

import (
	"context"
	"fmt"

	"salesboard/internal/adapters/source/schema"
	"salesboard/internal/core/facts"
	"salesboard/internal/platform/store"
)

const (
	selectSales     = `SELECT sls_ord_num, prd_key, sls_cust_id, sls_order_dt, sls_sales, sls_quantity, sls_price FROM fact_sales`
	selectProducts  = `SELECT prd_key, prd_nm, cat_key, CAT, SUBCAT, prd_cost, COLOR, STATUS FROM dim_product`
	selectCustomers = `SELECT customer_id, firstname, lastname, gender, country, marital_status, birth_date, email FROM dim_customer`
	selectDates     = `SELECT date, year, month, day_of_week, is_weekend FROM dim_date ORDER BY date`
)

// Source reads tables through the clickhouse seam
// integer columns are Int32 and scan through int32 targets
type Source struct {
	q store.Querier
}

var _ facts.Source = (*Source)(nil)

// New returns a Source over q
func New(q store.Querier) *Source { return &Source{q: q} }

func (s *Source) Sales(ctx context.Context) ([]facts.Sale, error) {
	return store.Many(ctx, s.q, func(r store.Row) (facts.Sale, error) {
		var v facts.Sale
		var qty int32
		err := r.Scan(&v.OrderNumber, &v.ProductKey, &v.CustomerID, &v.OrderDate, &v.SalesAmount, &qty, &v.Price)
		v.Quantity = int(qty)
		return v, err
	}, selectSales)
}

func (s *Source) Products(ctx context.Context) ([]facts.Product, error) {
	return store.Many(ctx, s.q, func(r store.Row) (facts.Product, error) {
		var v facts.Product
		err := r.Scan(&v.Key, &v.Name, &v.CategoryKey, &v.Category, &v.Subcategory, &v.Cost, &v.Color, &v.Status)
		return v, err
	}, selectProducts)
}

func (s *Source) Customers(ctx context.Context) ([]facts.Customer, error) {
	return store.Many(ctx, s.q, func(r store.Row) (facts.Customer, error) {
		var v facts.Customer
		err := r.Scan(&v.ID, &v.FirstName, &v.LastName, &v.Gender, &v.Country, &v.MaritalStatus, &v.BirthDate, &v.Email)
		return v, err
	}, selectCustomers)
}

func (s *Source) Dates(ctx context.Context) ([]facts.DateRow, error) {
	return store.Many(ctx, s.q, func(r store.Row) (facts.DateRow, error) {
		var v facts.DateRow
		var year, month, dow int32
		err := r.Scan(&v.Date, &year, &month, &dow, &v.IsWeekend)
		v.Year, v.Month, v.DayOfWeek = int(year), int(month), int(dow)
		return v, err
	}, selectDates)
}

// Seed creates the tables when missing, truncates them and inserts t
// clickhouse has no multi statement transactions so a failure can leave earlier tables written
func Seed(ctx context.Context, db store.Clickhouse, t facts.Tables) (map[string]int64, error) {
	for _, ddl := range schema.ClickHouseDDL {
		if err := db.Exec(ctx, ddl); err != nil {
			return nil, fmt.Errorf("chsource: create: %w", err)
		}
	}
	rows := schema.Rows(t)
	counts := make(map[string]int64, len(schema.Tables))
	for _, table := range schema.Tables {
		if err := db.Exec(ctx, "TRUNCATE TABLE IF EXISTS "+table); err != nil {
			return nil, fmt.Errorf("chsource: truncate %s: %w", table, err)
		}
		if len(rows[table]) > 0 {
			if err := db.Insert(ctx, table, rows[table]); err != nil {
				return nil, fmt.Errorf("chsource: insert %s: %w", table, err)
			}
		}
		counts[table] = int64(len(rows[table]))
	}
	return counts, nil
}
