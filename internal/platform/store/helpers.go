package store

import (
	"context"

	perr "salesboard/internal/platform/errors"
)

// Many runs sql and maps every row with scan
func Many[T any](ctx context.Context, q Querier, scan func(Row) (T, error), sql string, args ...any) ([]T, error) {
	rs, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rs.Close()

	out := []T{}
	for rs.Next() {
		v, err := scan(rs)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rs.Err()
}

// Scalar reads the first column of the first row into T
// a query with no rows yields perr.ErrNotFound
func Scalar[T any](ctx context.Context, q Querier, sql string, args ...any) (T, error) {
	var zero T
	rs, err := q.Query(ctx, sql, args...)
	if err != nil {
		return zero, err
	}
	defer rs.Close()

	if !rs.Next() {
		if err := rs.Err(); err != nil {
			return zero, err
		}
		return zero, perr.ErrNotFound
	}
	var v T
	if err := rs.Scan(&v); err != nil {
		return zero, err
	}
	return v, rs.Err()
}
