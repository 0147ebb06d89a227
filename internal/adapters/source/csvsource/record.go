package csvsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"salesboard/internal/core/normalize"
)

// header maps column names to their index in a row
type header map[string]int

func newHeader(cols []string) header {
	h := make(header, len(cols))
	for i, c := range cols {
		if i == 0 {
			c = strings.TrimPrefix(c, "\ufeff")
		}
		c = strings.TrimSpace(c)
		if _, dup := h[c]; !dup {
			h[c] = i
		}
	}
	return h
}

func (h header) has(col string) bool {
	_, ok := h[col]
	return ok
}

func (h header) missing(required []string) []string {
	var out []string
	for _, c := range required {
		if !h.has(c) {
			out = append(out, c)
		}
	}
	return out
}

// record is one data row bound to its header
type record struct {
	h    header
	row  []string
	line int
}

// raw returns the cell for col, empty when the column or cell is absent
func (r record) raw(col string) string {
	i, ok := r.h[col]
	if !ok || i >= len(r.row) {
		return ""
	}
	return r.row[i]
}

func (r record) str(col string) string {
	return normalize.Label(r.raw(col))
}

// first returns the first non empty cell among cols
func (r record) first(cols ...string) string {
	for _, c := range cols {
		if v := r.str(c); v != "" {
			return v
		}
	}
	return ""
}

func (r record) float(col string) (float64, error) {
	v := strings.TrimSpace(r.raw(col))
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, r.cellErr(col, v, err)
	}
	if !finite(f) {
		return 0, r.cellErr(col, v, errNotFinite)
	}
	return f, nil
}

// int accepts integral floats ("2.0") since some exports write every number as float
func (r record) int(col string) (int, error) {
	v := strings.TrimSpace(r.raw(col))
	if v == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, r.cellErr(col, v, err)
	}
	if !finite(f) {
		return 0, r.cellErr(col, v, errNotFinite)
	}
	if f != math.Trunc(f) {
		return 0, r.cellErr(col, v, errors.New("not an integer"))
	}
	return int(f), nil
}

func (r record) bool(col string) (bool, error) {
	v := strings.TrimSpace(r.raw(col))
	switch strings.ToLower(v) {
	case "", "false", "0", "no", "n":
		return false, nil
	case "true", "1", "yes", "y":
		return true, nil
	}
	return false, r.cellErr(col, v, errors.New("not a boolean"))
}

var errNotFinite = errors.New("not a finite number")

// finite rejects the NaN and Inf spellings ParseFloat accepts
func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

func (r record) cellErr(col, v string, err error) error {
	return fmt.Errorf("line %d column %s value %q: %w", r.line, col, v, err)
}

// blank reports a row whose cells are all whitespace
func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// decode reads a header row then every data row of r through parse
// check runs between rows and aborts the read when it returns an error
// each oneOf group needs at least one of its columns in the header
func decode[T any](r io.Reader, required []string, check func() error, parse func(record) (T, error), oneOf ...[]string) ([]T, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	cols, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("missing header row")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	h := newHeader(cols)
	if miss := h.missing(required); len(miss) > 0 {
		return nil, fmt.Errorf("missing columns %s", strings.Join(miss, ", "))
	}
	for _, alts := range oneOf {
		if len(h.missing(alts)) == len(alts) {
			return nil, fmt.Errorf("missing columns %s", strings.Join(alts, " or "))
		}
	}

	var out []T
	for n := 1; ; n++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		if n%4096 == 0 && check != nil {
			if err := check(); err != nil {
				return nil, err
			}
		}
		if blank(row) {
			continue
		}
		v, err := parse(record{h: h, row: row, line: line})
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}
