// Package csvio loads and saves column-oriented CSV signal data.
//
// The format: comma-separated cells trimmed of surrounding whitespace,
// blank lines and lines starting with '#' skipped, and an optional header
// row detected by the first row containing any non-numeric cell. All
// remaining rows must be numeric and have the same cell count.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrParse is returned (wrapped) for any malformed CSV content. Row-level
// failures name the offending row, counted over the non-skipped rows.
var ErrParse = errors.New("csvio: parse error")

// Data holds loaded CSV columns keyed by name, with the original column
// order preserved in Names.
type Data struct {
	Names   []string
	Columns map[string][]float64
}

// Load reads a CSV file. The first row becomes the column names iff any of
// its cells is non-numeric; otherwise columns are named Col1..ColN.
func Load(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// Read parses CSV content from r. See Load.
func Read(r io.Reader) (*Data, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // cell-count validation reports our own error

	rows := [][]string{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}

		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		rows = append(rows, record)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no data rows", ErrParse)
	}

	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrParse, i+1, len(row), width)
		}
	}

	names := make([]string, width)
	start := 0
	if hasNonNumericCell(rows[0]) {
		copy(names, rows[0])
		start = 1
	} else {
		for i := range names {
			names[i] = fmt.Sprintf("Col%d", i+1)
		}
	}

	data := &Data{
		Names:   names,
		Columns: make(map[string][]float64, width),
	}
	for _, name := range names {
		if _, exists := data.Columns[name]; exists {
			return nil, fmt.Errorf("%w: duplicate column name %q", ErrParse, name)
		}
		data.Columns[name] = make([]float64, 0, len(rows)-start)
	}

	for i := start; i < len(rows); i++ {
		for j, cell := range rows[i] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: non-numeric cell %q", ErrParse, i+1, cell)
			}
			data.Columns[names[j]] = append(data.Columns[names[j]], v)
		}
	}

	return data, nil
}

func hasNonNumericCell(row []string) bool {
	for _, cell := range row {
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			return true
		}
	}
	return false
}

// Save writes the columns to path with a header row, at the given decimal
// precision. Shorter columns are padded with empty cells.
func Save(path string, data *Data, precision int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Write(f, data, precision)
}

// Write writes the columns to w. See Save.
func Write(w io.Writer, data *Data, precision int) error {
	if data == nil || len(data.Names) == 0 {
		return fmt.Errorf("%w: no columns to write", ErrParse)
	}
	if precision < 0 {
		precision = 6
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(data.Names); err != nil {
		return err
	}

	rows := 0
	for _, name := range data.Names {
		if n := len(data.Columns[name]); n > rows {
			rows = n
		}
	}

	record := make([]string, len(data.Names))
	for i := 0; i < rows; i++ {
		for j, name := range data.Names {
			col := data.Columns[name]
			if i < len(col) {
				record[j] = strconv.FormatFloat(col[i], 'f', precision, 64)
			} else {
				record[j] = ""
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
