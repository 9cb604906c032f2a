package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ParseCSV reads an uploaded CSV stream into a Dataset. The first record is
// the header row. Any parse error (ragged row, bare quote, empty file)
// aborts the whole upload; the caller stores nothing on failure.
func ParseCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty file: no header row")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	ds := New(header)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		ds.Rows = append(ds.Rows, record)
	}
	return ds, nil
}
