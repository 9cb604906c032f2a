package model

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Iamhimanshu008/DeepCSAT-Ecommerce/internal/dataset"
)

func testEncoder() *Encoder {
	return &Encoder{
		Cols: []string{"channel_name", "Agent Shift"},
		Categories: map[string][]string{
			"channel_name": {"Email", "Chat"},
			"Agent Shift":  {"Day", "Night"},
		},
	}
}

func TestEncoderTransform(t *testing.T) {
	enc := testEncoder()
	ds := &dataset.Dataset{
		Columns: []string{"channel_name", "Agent Shift"},
		Rows:    [][]string{{"Chat", "Day"}},
	}
	got, err := enc.Transform(ds)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || len(got[0]) != 4 {
		t.Fatalf("unexpected shape: %v", got)
	}
	want := []float64{0, 1, 1, 0}
	for i := range want {
		if got[0][i] != want[i] {
			t.Fatalf("encoded row = %v, want %v", got[0], want)
		}
	}
}

func TestEncoderTransformMissingColumn(t *testing.T) {
	enc := testEncoder()
	ds := &dataset.Dataset{Columns: []string{"channel_name"}, Rows: [][]string{{"Email"}}}
	_, err := enc.Transform(ds)
	if err == nil || !strings.Contains(err.Error(), "Agent Shift") {
		t.Fatalf("expected missing-column error naming the column, got %v", err)
	}
}

func TestEncoderTransformUnknownCategory(t *testing.T) {
	enc := testEncoder()
	ds := &dataset.Dataset{
		Columns: []string{"channel_name", "Agent Shift"},
		Rows:    [][]string{{"Phone", "Day"}},
	}
	_, err := enc.Transform(ds)
	if err == nil {
		t.Fatalf("expected unknown-category error")
	}
	if !strings.Contains(err.Error(), "Phone") || !strings.Contains(err.Error(), "channel_name") {
		t.Fatalf("error should name value and column: %v", err)
	}
}

func TestLinearModelPredict(t *testing.T) {
	m := &LinearModel{Weights: []float64{2, -2, 0, 0}, Threshold: 0.5}
	rows := [][]float64{
		{1, 0, 1, 0}, // z=2, satisfied
		{0, 1, 0, 1}, // z=-2, not satisfied
	}
	got, err := m.Predict(rows)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 1 || got[1] != 0 {
		t.Fatalf("unexpected labels: %v", got)
	}
}

func TestLinearModelPredictWidthMismatch(t *testing.T) {
	m := &LinearModel{Weights: []float64{1, 1}, Threshold: 0.5}
	_, err := m.Predict([][]float64{{1, 0, 0}})
	if err == nil {
		t.Fatalf("expected width mismatch error")
	}
}

func writeArtifact(t *testing.T, dir, name string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, PreprocessorFile, testEncoder())
	writeArtifact(t, dir, ClassifierFile, &LinearModel{Weights: []float64{1, -1, 1, -1}, Intercept: 0.1})

	arts, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(arts.Preprocessor.Columns()) != 2 {
		t.Fatalf("unexpected columns: %v", arts.Preprocessor.Columns())
	}
	// Threshold defaults when the artifact omits it.
	if arts.Classifier.(*LinearModel).Threshold != 0.5 {
		t.Fatalf("expected default threshold")
	}
}

func TestLoadMissingArtifacts(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected error when preprocessor is missing")
	}

	writeArtifact(t, dir, PreprocessorFile, testEncoder())
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected error when classifier is missing")
	}
}
