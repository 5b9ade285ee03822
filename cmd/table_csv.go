package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cast"

	"github.com/sird-sim/sird-sim/sim/table"
)

// Accepted names for the first (index) column.
var validIndexColumns = map[string]bool{
	"t":     true,
	"day":   true,
	"Jour":  true,
	"temps": true,
}

// ReadTableCSV loads a time-indexed table. The first column is the index;
// every other column is parsed as float64.
func ReadTableCSV(path string) (*table.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table CSV: %w", err)
	}
	defer func() { _ = file.Close() }()

	tbl, err := readTable(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tbl, nil
}

func readTable(r io.Reader) (*table.Table, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read table CSV: %w", err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("table CSV empty or missing header")
	}
	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("table CSV header needs an index and at least one column, got %v", header)
	}
	if !validIndexColumns[header[0]] {
		return nil, fmt.Errorf("table CSV index column %q not recognized (use t, day, Jour or temps)", header[0])
	}

	rows := records[1:]
	index := make([]float64, len(rows))
	cols := make([][]float64, len(header)-1)
	for c := range cols {
		cols[c] = make([]float64, len(rows))
	}
	for i, row := range rows {
		// encoding/csv already rejects ragged rows; i+2 is the 1-based file line.
		if index[i], err = cast.ToFloat64E(row[0]); err != nil {
			return nil, fmt.Errorf("table CSV row %d: invalid %s: %w", i+2, header[0], err)
		}
		for c := range cols {
			if cols[c][i], err = cast.ToFloat64E(row[c+1]); err != nil {
				return nil, fmt.Errorf("table CSV row %d: invalid %s: %w", i+2, header[c+1], err)
			}
		}
	}

	tbl := table.New(index)
	for c, name := range header[1:] {
		if tbl.Has(name) {
			return nil, fmt.Errorf("table CSV duplicate column %q", name)
		}
		if err := tbl.Set(name, cols[c]); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

// WriteTableCSV writes tbl with a leading "t" index column.
func WriteTableCSV(w io.Writer, tbl *table.Table) error {
	writer := csv.NewWriter(w)
	names := tbl.Columns()
	if err := writer.Write(append([]string{"t"}, names...)); err != nil {
		return fmt.Errorf("write table CSV header: %w", err)
	}
	cols := make([][]float64, len(names))
	for c, name := range names {
		cols[c], _ = tbl.Column(name)
	}
	index := tbl.Index()
	record := make([]string, len(names)+1)
	for i := range index {
		record[0] = cast.ToString(index[i])
		for c := range cols {
			record[c+1] = cast.ToString(cols[c][i])
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write table CSV row %d: %w", i+2, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// writeTableTo writes tbl to path, or to fallback when path is empty.
func writeTableTo(path string, fallback io.Writer, tbl *table.Table) error {
	if path == "" {
		return WriteTableCSV(fallback, tbl)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteTableCSV(file, tbl); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
