// Package table holds the time-indexed compartment table exchanged between
// the data pipeline and the analysis core: an ordered index (the day number)
// plus named float64 columns of equal length.
package table

import (
	"fmt"
	"math"
	"sort"

	"github.com/sird-sim/sird-sim/sim/internal/errs"
)

// Well-known column names.
const (
	ColS            = "S"
	ColI            = "I"
	ColR            = "R"
	ColD            = "D"
	ColIAbs         = "I_abs"
	ColRAbs         = "R_abs"
	ColDAbs         = "D_abs"
	ColBedsPerMille = "lits_par_mille"
)

// Compartments lists the normalized SIRD columns in state-vector order.
var Compartments = []string{ColS, ColI, ColR, ColD}

var (
	// ErrMissingColumn is returned when a requested column is absent.
	ErrMissingColumn = fmt.Errorf("table: missing column: %w", errs.ErrMissingData)

	// ErrLength is returned when a column's length differs from the index.
	ErrLength = fmt.Errorf("table: column length differs from index: %w", errs.ErrConfig)

	// ErrInvalid is returned by Validate for out-of-range or non-finite
	// compartment values and for a non-increasing index.
	ErrInvalid = fmt.Errorf("table: invalid compartment data: %w", errs.ErrConfig)

	// ErrRowRange is returned when a row or slice bound is out of range.
	ErrRowRange = fmt.Errorf("table: row out of range: %w", errs.ErrConfig)
)

// Table is a column-oriented, index-ordered table. The zero value is not
// usable; construct with New.
type Table struct {
	index   []float64
	columns map[string][]float64
	order   []string
}

// New creates an empty table over the given index. The index is copied.
func New(index []float64) *Table {
	return &Table{
		index:   append([]float64(nil), index...),
		columns: make(map[string][]float64),
	}
}

// Sequential creates an empty table indexed 0..n-1.
func Sequential(n int) *Table {
	idx := make([]float64, n)
	for i := range idx {
		idx[i] = float64(i)
	}
	return New(idx)
}

// Set adds or replaces a column. The values are copied.
func (t *Table) Set(name string, values []float64) error {
	if len(values) != len(t.index) {
		return fmt.Errorf("%w: column %q has %d values, index has %d", ErrLength, name, len(values), len(t.index))
	}
	if _, ok := t.columns[name]; !ok {
		t.order = append(t.order, name)
	}
	t.columns[name] = append([]float64(nil), values...)
	return nil
}

// Column returns a copy of the named column.
func (t *Table) Column(name string) ([]float64, error) {
	v, ok := t.columns[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrMissingColumn, name, t.Columns())
	}
	return append([]float64(nil), v...), nil
}

// Require checks that every named column is present.
func (t *Table) Require(names ...string) error {
	for _, name := range names {
		if !t.Has(name) {
			return fmt.Errorf("%w %q (have %v)", ErrMissingColumn, name, t.Columns())
		}
	}
	return nil
}

// Has reports whether the named column exists.
func (t *Table) Has(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Len is the number of rows.
func (t *Table) Len() int { return len(t.index) }

// Index returns a copy of the index.
func (t *Table) Index() []float64 { return append([]float64(nil), t.index...) }

// Columns returns the column names in insertion order.
func (t *Table) Columns() []string { return append([]string(nil), t.order...) }

// Value returns a single cell.
func (t *Table) Value(name string, row int) (float64, error) {
	v, ok := t.columns[name]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrMissingColumn, name)
	}
	if row < 0 || row >= len(v) {
		return 0, fmt.Errorf("%w: %d of %d", ErrRowRange, row, len(v))
	}
	return v[row], nil
}

// Row returns every column's value at row i, keyed by column name.
func (t *Table) Row(i int) (map[string]float64, error) {
	if i < 0 || i >= len(t.index) {
		return nil, fmt.Errorf("%w: %d of %d", ErrRowRange, i, len(t.index))
	}
	row := make(map[string]float64, len(t.columns))
	for name, v := range t.columns {
		row[name] = v[i]
	}
	return row, nil
}

// Slice returns a new table holding rows [from, to).
func (t *Table) Slice(from, to int) (*Table, error) {
	if from < 0 || to > len(t.index) || from > to {
		return nil, fmt.Errorf("%w: [%d, %d) of %d", ErrRowRange, from, to, len(t.index))
	}
	out := New(t.index[from:to])
	for _, name := range t.order {
		_ = out.Set(name, t.columns[name][from:to])
	}
	return out, nil
}

// Split cuts the table into a leading calibration part and a trailing
// holdout part at max(int(n·frac), minRows), capped at n.
func (t *Table) Split(frac float64, minRows int) (train, test *Table, err error) {
	if math.IsNaN(frac) || frac < 0 || frac > 1 {
		return nil, nil, fmt.Errorf("%w: split fraction %v not in [0, 1]", ErrRowRange, frac)
	}
	n := t.Len()
	cut := int(float64(n) * frac)
	if cut < minRows {
		cut = minRows
	}
	if cut > n {
		cut = n
	}
	if train, err = t.Slice(0, cut); err != nil {
		return nil, nil, err
	}
	if test, err = t.Slice(cut, n); err != nil {
		return nil, nil, err
	}
	return train, test, nil
}

// Validate checks the table against the analysis input contract: a strictly
// increasing index, and S, I, R, D (those present) finite and within [0, 1]
// with S+I+R+D <= 1 within 1e-6 when all four are present.
func (t *Table) Validate() error {
	if !sort.SliceIsSorted(t.index, func(i, j int) bool { return t.index[i] < t.index[j] }) {
		return fmt.Errorf("%w: index is not increasing", ErrInvalid)
	}
	for i := 1; i < len(t.index); i++ {
		if t.index[i] == t.index[i-1] {
			return fmt.Errorf("%w: duplicate index %v", ErrInvalid, t.index[i])
		}
	}
	present := 0
	for _, name := range Compartments {
		v, ok := t.columns[name]
		if !ok {
			continue
		}
		present++
		for i, x := range v {
			if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 || x > 1 {
				return fmt.Errorf("%w: %s[%d] = %v outside [0, 1]", ErrInvalid, name, i, x)
			}
		}
	}
	if present < len(Compartments) {
		return nil
	}
	for i := range t.index {
		sum := t.columns[ColS][i] + t.columns[ColI][i] + t.columns[ColR][i] + t.columns[ColD][i]
		if sum > 1+1e-6 {
			return fmt.Errorf("%w: S+I+R+D = %v at row %d exceeds 1", ErrInvalid, sum, i)
		}
	}
	return nil
}
