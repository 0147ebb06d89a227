package aggregate

import (
	"sort"

	"salesboard/internal/core/facts"
)

// Matrix is a dense row x column grid of metric sums
type Matrix struct {
	Columns []string    `json:"columns"`
	Rows    []MatrixRow `json:"rows"`
}

// MatrixRow holds one row's cells aligned with Matrix.Columns
type MatrixRow struct {
	Name  string    `json:"name"`
	Cells []float64 `json:"cells"`
}

// Cell returns the value for col, 0 when col is not a column
func (m Matrix) Cell(row MatrixRow, col string) float64 {
	i := sort.SearchStrings(m.Columns, col)
	if i < len(m.Columns) && m.Columns[i] == col && i < len(row.Cells) {
		return row.Cells[i]
	}
	return 0
}

// Entries returns row as an ordered column -> value list
func (m Matrix) Entries(row MatrixRow) []Cell {
	out := make([]Cell, len(m.Columns))
	for i, c := range m.Columns {
		out[i] = Cell{Column: c, Value: row.Cells[i]}
	}
	return out
}

// Cell is one column value pair of a matrix row
type Cell struct {
	Column string  `json:"column"`
	Value  float64 `json:"value"`
}

// SecondaryFor picks the column field paired with a row field when the caller names none
func SecondaryFor(row facts.Field) facts.Field {
	if row == facts.FieldGender {
		return facts.FieldCategory
	}
	return facts.FieldGender
}

// AggregateMatrix sums the metric by (row, col)
// rows keep first seen order, columns are sorted, missing combinations are 0
func AggregateMatrix(rows []facts.Fact, rowBy, colBy facts.Field, metric facts.Metric) Matrix {
	rowIdx := map[string]int{}
	var rowNames []string
	cols := map[string]struct{}{}
	sums := []map[string]float64{}

	for i := range rows {
		r := &rows[i]
		rk := groupKey(rowBy, r)
		ck := groupKey(colBy, r)

		j, ok := rowIdx[rk]
		if !ok {
			j = len(rowNames)
			rowIdx[rk] = j
			rowNames = append(rowNames, rk)
			sums = append(sums, map[string]float64{})
		}
		cols[ck] = struct{}{}
		sums[j][ck] += metric.Value(r)
	}

	columns := make([]string, 0, len(cols))
	for c := range cols {
		columns = append(columns, c)
	}
	sort.Strings(columns)

	out := Matrix{Columns: columns, Rows: make([]MatrixRow, len(rowNames))}
	for j, name := range rowNames {
		cells := make([]float64, len(columns))
		for k, c := range columns {
			cells[k] = sums[j][c]
		}
		out.Rows[j] = MatrixRow{Name: name, Cells: cells}
	}
	return out
}
