package dataset

import (
	"bytes"
	"strings"
	"testing"
)

func sample() *Dataset {
	return &Dataset{
		Columns: []string{"channel_name", "CSAT Score"},
		Rows: [][]string{
			{"Email", "5"},
			{"Email", "2"},
			{"Chat", "4"},
		},
	}
}

func TestDistinctFirstAppearanceOrder(t *testing.T) {
	ds := sample()
	got := ds.Distinct("channel_name")
	if len(got) != 2 || got[0] != "Email" || got[1] != "Chat" {
		t.Fatalf("unexpected distinct values: %v", got)
	}
	if ds.Distinct("missing") != nil {
		t.Fatalf("expected nil for absent column")
	}
}

func TestFilterEqual(t *testing.T) {
	ds := sample()
	filtered := ds.FilterEqual("channel_name", "Email")
	if filtered.NumRows() != 2 {
		t.Fatalf("expected 2 rows, got %d", filtered.NumRows())
	}
	for _, row := range filtered.Rows {
		if row[0] != "Email" {
			t.Fatalf("row leaked through filter: %v", row)
		}
	}
	if ds.NumRows() != 3 {
		t.Fatalf("filter mutated source dataset")
	}
}

func TestProjectMissingColumn(t *testing.T) {
	ds := sample()
	_, err := ds.Project([]string{"channel_name", "Agent_name"})
	if err == nil {
		t.Fatalf("expected error for missing column")
	}
	if !strings.Contains(err.Error(), "Agent_name") {
		t.Fatalf("error should name the missing column: %v", err)
	}
}

func TestProjectOrder(t *testing.T) {
	ds := sample()
	proj, err := ds.Project([]string{"CSAT Score", "channel_name"})
	if err != nil {
		t.Fatal(err)
	}
	if proj.Columns[0] != "CSAT Score" {
		t.Fatalf("projection order not respected: %v", proj.Columns)
	}
	if proj.Rows[0][0] != "5" || proj.Rows[0][1] != "Email" {
		t.Fatalf("unexpected projected row: %v", proj.Rows[0])
	}
}

func TestSetColumnAppendAndOverwrite(t *testing.T) {
	ds := sample()
	if err := ds.SetColumn("Predicted CSAT", []string{"1", "0", "1"}); err != nil {
		t.Fatal(err)
	}
	if len(ds.Columns) != 3 || ds.Columns[2] != "Predicted CSAT" {
		t.Fatalf("column not appended: %v", ds.Columns)
	}
	// Re-running the same prediction overwrites in place.
	if err := ds.SetColumn("Predicted CSAT", []string{"0", "0", "0"}); err != nil {
		t.Fatal(err)
	}
	if len(ds.Columns) != 3 {
		t.Fatalf("overwrite added a duplicate column: %v", ds.Columns)
	}
	if ds.Rows[0][2] != "0" {
		t.Fatalf("overwrite did not replace values")
	}

	if err := ds.SetColumn("bad", []string{"1"}); err == nil {
		t.Fatalf("expected length mismatch error")
	}
}

func TestHead(t *testing.T) {
	ds := sample()
	if ds.Head(2).NumRows() != 2 {
		t.Fatalf("head(2) wrong size")
	}
	if ds.Head(10).NumRows() != 3 {
		t.Fatalf("head beyond size should clamp")
	}
}

func TestFloatColumnSkipsUnparseable(t *testing.T) {
	ds := &Dataset{
		Columns: []string{"CSAT Score"},
		Rows:    [][]string{{"5"}, {"n/a"}, {"4"}},
	}
	vals, n := ds.FloatColumn("CSAT Score")
	if n != 2 || len(vals) != 2 {
		t.Fatalf("expected 2 parseable cells, got %d", n)
	}
	if vals[0] != 5 || vals[1] != 4 {
		t.Fatalf("unexpected values: %v", vals)
	}
}

func TestWriteCSV(t *testing.T) {
	ds := sample()
	var buf bytes.Buffer
	if err := ds.WriteCSV(&buf); err != nil {
		t.Fatal(err)
	}
	want := "channel_name,CSAT Score\nEmail,5\nEmail,2\nChat,4\n"
	if buf.String() != want {
		t.Fatalf("unexpected csv output:\n%s", buf.String())
	}
}
