// Package predict orchestrates the two prediction modes over the loaded
// model artifacts. Errors from the transform or predict steps never
// propagate past the orchestrator: they come back inside the Result for the
// view layer to render, with the underlying message intact.
package predict

import (
	"strconv"

	"github.com/Iamhimanshu008/DeepCSAT-Ecommerce/internal/dataset"
	"github.com/Iamhimanshu008/DeepCSAT-Ecommerce/internal/model"
	"github.com/Iamhimanshu008/DeepCSAT-Ecommerce/pkg/types"
)

// Human-readable labels for the binary model output.
const (
	LabelSatisfied    = "Satisfied"
	LabelNotSatisfied = "Not Satisfied"
)

// Label maps a numeric model output to its display string.
func Label(v int) string {
	if v == 1 {
		return LabelSatisfied
	}
	return LabelNotSatisfied
}

// Result carries either the predictions or the error that stopped them.
type Result struct {
	Predictions []types.Prediction
	Err         error
}

// Orchestrator runs feature records through the preprocessor and
// classifier.
type Orchestrator struct {
	pre model.Preprocessor
	clf model.Classifier
}

// New wires an orchestrator over the loaded artifacts.
func New(pre model.Preprocessor, clf model.Classifier) *Orchestrator {
	return &Orchestrator{pre: pre, clf: clf}
}

// Columns exposes the preprocessor's input contract. Both prediction paths
// and the live form derive their column set from here.
func (o *Orchestrator) Columns() []string {
	return o.pre.Columns()
}

// Live classifies a single form-built record. No state is touched; the
// result is either one prediction or the captured error.
func (o *Orchestrator) Live(rec types.FeatureRecord) Result {
	cols := o.pre.Columns()
	row := make([]string, len(cols))
	for i, col := range cols {
		v, _ := rec.Value(col)
		row[i] = v
	}
	batch := dataset.New(cols)
	batch.Rows = [][]string{row}

	preds, err := o.run(batch)
	if err != nil {
		return Result{Err: err}
	}
	return Result{Predictions: preds}
}

// Batch classifies every row of the session dataset and, only on success,
// attaches the two prediction columns to it in place. On any failure the
// dataset is left exactly as it was.
func (o *Orchestrator) Batch(ds *dataset.Dataset) Result {
	projected, err := ds.Project(o.pre.Columns())
	if err != nil {
		return Result{Err: err}
	}
	preds, err := o.run(projected)
	if err != nil {
		return Result{Err: err}
	}

	values := make([]string, len(preds))
	labels := make([]string, len(preds))
	for i, p := range preds {
		values[i] = strconv.Itoa(p.Value)
		labels[i] = p.Label
	}
	if err := ds.SetColumn(types.ColPredictedCSAT, values); err != nil {
		return Result{Err: err}
	}
	if err := ds.SetColumn(types.ColPredictedLabel, labels); err != nil {
		return Result{Err: err}
	}
	return Result{Predictions: preds}
}

func (o *Orchestrator) run(batch *dataset.Dataset) ([]types.Prediction, error) {
	encoded, err := o.pre.Transform(batch)
	if err != nil {
		return nil, err
	}
	labels, err := o.clf.Predict(encoded)
	if err != nil {
		return nil, err
	}
	preds := make([]types.Prediction, len(labels))
	for i, v := range labels {
		preds[i] = types.Prediction{Value: v, Label: Label(v)}
	}
	return preds, nil
}
