// Package pgsource reads and seeds the four source tables in postgres
package pgsource

import (
	"context"
	"time"

	"salesboard/internal/adapters/source/schema"
	"salesboard/internal/core/facts"
	perr "salesboard/internal/platform/errors"
	"salesboard/internal/platform/store"
)

const (
	selectSales = `SELECT sls_ord_num, prd_key, sls_cust_id, sls_order_dt, sls_sales, sls_quantity, sls_price
		FROM fact_sales`
	selectProducts = `SELECT prd_key, prd_nm, cat_key, "CAT", "SUBCAT", prd_cost,
		COALESCE("COLOR", ''), COALESCE("STATUS", '')
		FROM dim_product`
	selectCustomers = `SELECT customer_id, firstname, lastname, gender, country,
		COALESCE(marital_status, ''), birth_date, email
		FROM dim_customer`
	selectDates = `SELECT date, year, month, day_of_week, is_weekend
		FROM dim_date ORDER BY date`
)

// Source reads tables through a postgres querier
type Source struct {
	q store.Querier
}

var _ facts.Source = (*Source)(nil)

// New returns a Source over q
func New(q store.Querier) *Source { return &Source{q: q} }

func (s *Source) Sales(ctx context.Context) ([]facts.Sale, error) {
	return read(ctx, s.q, schema.TableSales, scanSale, selectSales)
}

func (s *Source) Products(ctx context.Context) ([]facts.Product, error) {
	return read(ctx, s.q, schema.TableProducts, scanProduct, selectProducts)
}

func (s *Source) Customers(ctx context.Context) ([]facts.Customer, error) {
	return read(ctx, s.q, schema.TableCustomers, scanCustomer, selectCustomers)
}

func (s *Source) Dates(ctx context.Context) ([]facts.DateRow, error) {
	return read(ctx, s.q, schema.TableDates, scanDate, selectDates)
}

func read[T any](ctx context.Context, q store.Querier, table string, scan func(store.Row) (T, error), sql string) ([]T, error) {
	out, err := store.Many(ctx, q, scan, sql)
	if err != nil {
		return nil, perr.FromPostgresf(err, "pgsource: read %s", table)
	}
	return out, nil
}

func scanSale(r store.Row) (facts.Sale, error) {
	var v facts.Sale
	err := r.Scan(&v.OrderNumber, &v.ProductKey, &v.CustomerID, &v.OrderDate, &v.SalesAmount, &v.Quantity, &v.Price)
	return v, err
}

func scanProduct(r store.Row) (facts.Product, error) {
	var v facts.Product
	err := r.Scan(&v.Key, &v.Name, &v.CategoryKey, &v.Category, &v.Subcategory, &v.Cost, &v.Color, &v.Status)
	return v, err
}

func scanCustomer(r store.Row) (facts.Customer, error) {
	var v facts.Customer
	err := r.Scan(&v.ID, &v.FirstName, &v.LastName, &v.Gender, &v.Country, &v.MaritalStatus, &v.BirthDate, &v.Email)
	return v, err
}

func scanDate(r store.Row) (facts.DateRow, error) {
	var v facts.DateRow
	err := r.Scan(&v.Date, &v.Year, &v.Month, &v.DayOfWeek, &v.IsWeekend)
	return v, err
}

// seedAttempts bounds how often a transaction aborted by contention is rerun
const seedAttempts = 3

// seedBackoff is the pause before the second attempt, doubled after each retry
var seedBackoff = 200 * time.Millisecond

// Seed replaces the contents of the four tables with t in one transaction
// returns the number of rows copied per table; serialization failures and deadlocks rerun the transaction
func Seed(ctx context.Context, db store.TxRunner, t facts.Tables) (map[string]int64, error) {
	rows := schema.Rows(t)
	var wait time.Duration
	for attempt := 1; ; attempt++ {
		counts, err := seedOnce(ctx, db, rows)
		if err == nil || attempt == seedAttempts || !perr.IsRetryable(err) {
			return counts, err
		}
		if wait == 0 {
			wait = seedBackoff
		}
		select {
		case <-ctx.Done():
			return nil, perr.Wrap(ctx.Err(), perr.ErrorCodeUnavailable, "pgsource: seed cancelled")
		case <-time.After(wait):
		}
		wait *= 2
	}
}

func seedOnce(ctx context.Context, db store.TxRunner, rows map[string][][]any) (map[string]int64, error) {
	counts := make(map[string]int64, len(schema.Tables))
	err := db.Tx(ctx, func(q store.RowQuerier) error {
		for _, ddl := range schema.PostgresDDL {
			if _, err := q.Exec(ctx, ddl); err != nil {
				return perr.FromPostgres(err, "pgsource: create")
			}
		}
		for _, table := range schema.Tables {
			if _, err := q.Exec(ctx, "TRUNCATE "+table); err != nil {
				return perr.FromPostgresf(err, "pgsource: truncate %s", table)
			}
			n, err := q.CopyFrom(ctx, table, schema.Columns(table), rows[table])
			if err != nil {
				return perr.AttachFieldFromPg(perr.FromPostgresf(err, "pgsource: copy %s", table))
			}
			counts[table] = n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}
