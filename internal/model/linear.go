package model

import (
	"fmt"
	"math"
)

// LinearModel is a fitted logistic-regression classifier: one weight per
// encoded feature, a bias term, and the decision threshold on the positive
// class probability.
type LinearModel struct {
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
	Threshold float64   `json:"threshold"`
}

// Predict returns one {0,1} label per input row. A row whose width does not
// match the fitted weight vector fails the whole batch.
func (m *LinearModel) Predict(rows [][]float64) ([]int, error) {
	out := make([]int, 0, len(rows))
	for i, row := range rows {
		if len(row) != len(m.Weights) {
			return nil, fmt.Errorf("predict: row %d has %d features, model expects %d", i, len(row), len(m.Weights))
		}
		z := m.Intercept
		for j, w := range m.Weights {
			z += w * row[j]
		}
		p := 1 / (1 + math.Exp(-z))
		if p >= m.Threshold {
			out = append(out, 1)
		} else {
			out = append(out, 0)
		}
	}
	return out, nil
}
