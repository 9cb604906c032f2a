package model

import (
	"fmt"

	"github.com/Iamhimanshu008/DeepCSAT-Ecommerce/internal/dataset"
)

// Encoder is a fitted one-hot encoder over a fixed set of categorical
// columns. The artifact records, per column, the vocabulary observed during
// training; the encoded width is the sum of vocabulary sizes.
type Encoder struct {
	Cols       []string            `json:"columns"`
	Categories map[string][]string `json:"categories"`
}

// Columns returns the fitted input columns in fit order.
func (e *Encoder) Columns() []string {
	return e.Cols
}

// Width returns the encoded feature count.
func (e *Encoder) Width() int {
	w := 0
	for _, col := range e.Cols {
		w += len(e.Categories[col])
	}
	return w
}

// Transform one-hot encodes every row of the batch. The batch must contain
// each fitted column, and every cell value must be in the fitted vocabulary
// for its column. Both violations fail the whole batch.
func (e *Encoder) Transform(ds *dataset.Dataset) ([][]float64, error) {
	indices := make([]int, len(e.Cols))
	for i, col := range e.Cols {
		idx := ds.ColumnIndex(col)
		if idx < 0 {
			return nil, fmt.Errorf("transform: column %q not found", col)
		}
		indices[i] = idx
	}

	width := e.Width()
	out := make([][]float64, 0, ds.NumRows())
	for _, row := range ds.Rows {
		encoded := make([]float64, width)
		offset := 0
		for i, col := range e.Cols {
			vocab := e.Categories[col]
			pos := -1
			for j, v := range vocab {
				if v == row[indices[i]] {
					pos = j
					break
				}
			}
			if pos < 0 {
				return nil, fmt.Errorf("transform: unknown category %q in column %q", row[indices[i]], col)
			}
			encoded[offset+pos] = 1
			offset += len(vocab)
		}
		out = append(out, encoded)
	}
	return out, nil
}
