// Package model loads the two artifacts produced by the offline training
// pipeline and exposes them behind narrow interfaces. The dashboard treats
// both as black boxes: it never inspects weights or vocabularies beyond the
// column contract.
package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Iamhimanshu008/DeepCSAT-Ecommerce/internal/dataset"
)

// Fixed artifact file names within the model directory.
const (
	PreprocessorFile = "preprocessor.json"
	ClassifierFile   = "model.json"
)

// Preprocessor turns a batch of categorical records into the numeric matrix
// the classifier was trained on.
type Preprocessor interface {
	// Columns is the exact input column set the preprocessor was fit on.
	Columns() []string
	// Transform encodes a batch. The batch must carry every contract
	// column; unknown category values are an error, not a silent zero.
	Transform(ds *dataset.Dataset) ([][]float64, error)
}

// Classifier maps an encoded matrix to one binary label per row.
type Classifier interface {
	Predict(rows [][]float64) ([]int, error)
}

// Artifacts bundles the two loaded model objects.
type Artifacts struct {
	Preprocessor Preprocessor
	Classifier   Classifier
}

// Load deserializes both artifacts from dir. A missing or unreadable file
// fails the load outright; the caller must not start the session without
// both objects.
func Load(dir string) (*Artifacts, error) {
	enc := &Encoder{}
	if err := readJSON(filepath.Join(dir, PreprocessorFile), enc); err != nil {
		return nil, fmt.Errorf("load preprocessor: %w", err)
	}
	if len(enc.Cols) == 0 {
		return nil, fmt.Errorf("load preprocessor: artifact has no columns")
	}

	clf := &LinearModel{}
	if err := readJSON(filepath.Join(dir, ClassifierFile), clf); err != nil {
		return nil, fmt.Errorf("load classifier: %w", err)
	}
	if len(clf.Weights) == 0 {
		return nil, fmt.Errorf("load classifier: artifact has no weights")
	}
	if clf.Threshold == 0 {
		clf.Threshold = 0.5
	}

	return &Artifacts{Preprocessor: enc, Classifier: clf}, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
