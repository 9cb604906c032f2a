package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Dataset is an in-memory tabular view of one uploaded CSV. Cells are kept
// as strings; numeric interpretation happens at the point of use.
type Dataset struct {
	Columns []string
	Rows    [][]string
}

// New returns an empty dataset with the given column set.
func New(columns []string) *Dataset {
	return &Dataset{Columns: append([]string(nil), columns...)}
}

// NumRows returns the number of data rows (header excluded).
func (d *Dataset) NumRows() int {
	return len(d.Rows)
}

// HasColumn reports whether a column with the exact name exists.
func (d *Dataset) HasColumn(name string) bool {
	return d.ColumnIndex(name) >= 0
}

// ColumnIndex returns the position of a column, or -1 if absent.
func (d *Dataset) ColumnIndex(name string) int {
	for i, c := range d.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns all cell values of one column in row order. Absent column
// yields nil.
func (d *Dataset) Column(name string) []string {
	idx := d.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	out := make([]string, 0, len(d.Rows))
	for _, row := range d.Rows {
		out = append(out, row[idx])
	}
	return out
}

// Distinct returns the unique values of a column in first-appearance order.
func (d *Dataset) Distinct(name string) []string {
	idx := d.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(d.Rows))
	out := make([]string, 0)
	for _, row := range d.Rows {
		v := row[idx]
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// FilterEqual returns a new dataset restricted to rows whose column value
// matches exactly. The receiver is not modified; rows are shared, not
// copied. An absent column yields an empty view.
func (d *Dataset) FilterEqual(name, value string) *Dataset {
	out := New(d.Columns)
	idx := d.ColumnIndex(name)
	if idx < 0 {
		return out
	}
	for _, row := range d.Rows {
		if row[idx] == value {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// Project returns a new dataset containing exactly the requested columns in
// the requested order. The first missing column fails the whole projection.
func (d *Dataset) Project(columns []string) (*Dataset, error) {
	indices := make([]int, 0, len(columns))
	for _, c := range columns {
		idx := d.ColumnIndex(c)
		if idx < 0 {
			return nil, fmt.Errorf("column %q not found in uploaded data", c)
		}
		indices = append(indices, idx)
	}
	out := New(columns)
	out.Rows = make([][]string, 0, len(d.Rows))
	for _, row := range d.Rows {
		projected := make([]string, len(indices))
		for i, idx := range indices {
			projected[i] = row[idx]
		}
		out.Rows = append(out.Rows, projected)
	}
	return out, nil
}

// SetColumn appends a column at the end, or overwrites it in place when a
// column with that name already exists. The value count must match the row
// count.
func (d *Dataset) SetColumn(name string, values []string) error {
	if len(values) != len(d.Rows) {
		return fmt.Errorf("column %q: got %d values for %d rows", name, len(values), len(d.Rows))
	}
	if idx := d.ColumnIndex(name); idx >= 0 {
		for i := range d.Rows {
			d.Rows[i][idx] = values[i]
		}
		return nil
	}
	d.Columns = append(d.Columns, name)
	for i := range d.Rows {
		d.Rows[i] = append(d.Rows[i], values[i])
	}
	return nil
}

// Head returns a view of at most n leading rows.
func (d *Dataset) Head(n int) *Dataset {
	if n > len(d.Rows) {
		n = len(d.Rows)
	}
	out := New(d.Columns)
	out.Rows = d.Rows[:n]
	return out
}

// FloatColumn parses a column as floats, skipping cells that do not parse.
// The second result is the count of parseable cells.
func (d *Dataset) FloatColumn(name string) ([]float64, int) {
	idx := d.ColumnIndex(name)
	if idx < 0 {
		return nil, 0
	}
	out := make([]float64, 0, len(d.Rows))
	for _, row := range d.Rows {
		v, err := strconv.ParseFloat(row[idx], 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out, len(out)
}

// WriteCSV emits the dataset as UTF-8 CSV with a header row, columns in
// their current order.
func (d *Dataset) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(d.Columns); err != nil {
		return err
	}
	for _, row := range d.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
