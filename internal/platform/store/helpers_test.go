package store

import (
	"context"
	"errors"
	"testing"

	perr "salesboard/internal/platform/errors"
)

// fakeRows replays fixed rows of scalar values
type fakeRows struct {
	data   [][]any
	i      int
	err    error
	closed bool
}

func (f *fakeRows) Next() bool {
	if f.i >= len(f.data) {
		return false
	}
	f.i++
	return true
}

func (f *fakeRows) Scan(dest ...any) error {
	row := f.data[f.i-1]
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = row[i].(string)
		case *int:
			*p = row[i].(int)
		default:
			return errors.New("unsupported dest")
		}
	}
	return nil
}

func (f *fakeRows) Err() error        { return f.err }
func (f *fakeRows) Close()            { f.closed = true }
func (f *fakeRows) Columns() []string { return nil }

type fakeQuerier struct {
	rows *fakeRows
	err  error
}

func (q fakeQuerier) Query(context.Context, string, ...any) (Rows, error) {
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

func TestMany(t *testing.T) {
	t.Parallel()
	rs := &fakeRows{data: [][]any{{"SO1", 2}, {"SO2", 5}}}
	type line struct {
		order string
		qty   int
	}
	got, err := Many(context.Background(), fakeQuerier{rows: rs}, func(r Row) (line, error) {
		var l line
		err := r.Scan(&l.order, &l.qty)
		return l, err
	}, "select")
	if err != nil {
		t.Fatalf("many: %v", err)
	}
	if len(got) != 2 || got[1].order != "SO2" || got[1].qty != 5 {
		t.Fatalf("rows: %+v", got)
	}
	if !rs.closed {
		t.Fatalf("rows not closed")
	}
}

func TestMany_Errors(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	if _, err := Many(context.Background(), fakeQuerier{err: boom}, func(Row) (int, error) { return 0, nil }, "x"); !errors.Is(err, boom) {
		t.Fatalf("query error lost: %v", err)
	}
	rs := &fakeRows{data: [][]any{{1}}, err: boom}
	if _, err := Many(context.Background(), fakeQuerier{rows: rs}, func(r Row) (int, error) {
		var v int
		return v, r.Scan(&v)
	}, "x"); !errors.Is(err, boom) {
		t.Fatalf("iteration error lost: %v", err)
	}
}

func TestScalar(t *testing.T) {
	t.Parallel()
	n, err := Scalar[int](context.Background(), fakeQuerier{rows: &fakeRows{data: [][]any{{42}}}}, "select count(*)")
	if err != nil || n != 42 {
		t.Fatalf("scalar: %v %v", n, err)
	}
	_, err = Scalar[int](context.Background(), fakeQuerier{rows: &fakeRows{}}, "select")
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

type pingCloser struct {
	TxRunner
	pingErr  error
	closeErr error
	closed   bool
}

func (p *pingCloser) Ping(context.Context) error { return p.pingErr }
func (p *pingCloser) Close() error               { p.closed = true; return p.closeErr }

func TestStore_OpenNothing(t *testing.T) {
	t.Parallel()
	s, err := Open(context.Background(), Config{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.PG != nil || s.CH != nil {
		t.Fatalf("no backend should be enabled")
	}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("guard on empty store: %v", err)
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("close on empty store: %v", err)
	}
}

func TestStore_GuardAndClose(t *testing.T) {
	t.Parallel()
	pgx := &pingCloser{pingErr: errors.New("down")}
	s := &Store{PG: pgx}
	if err := s.Guard(context.Background()); err == nil {
		t.Fatalf("guard should report pg failure")
	}
	if err := s.Close(context.Background()); err != nil || !pgx.closed {
		t.Fatalf("close: %v closed=%v", err, pgx.closed)
	}
	var nilStore *Store
	if err := nilStore.Guard(context.Background()); err == nil {
		t.Fatalf("nil store guard should fail")
	}
}
