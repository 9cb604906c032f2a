package dataset

import (
	"strings"
	"testing"
)

func TestParseCSVNormal(t *testing.T) {
	in := "channel_name,CSAT Score\nEmail,5\nChat,4\n"
	ds, err := ParseCSV(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(ds.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(ds.Columns))
	}
	if ds.NumRows() != 2 {
		t.Fatalf("expected 2 rows, got %d", ds.NumRows())
	}
	if ds.Rows[1][0] != "Chat" {
		t.Fatalf("unexpected cell: %s", ds.Rows[1][0])
	}
}

func TestParseCSVHeaderOnly(t *testing.T) {
	ds, err := ParseCSV(strings.NewReader("a,b,c\n"))
	if err != nil {
		t.Fatal(err)
	}
	if ds.NumRows() != 0 {
		t.Fatalf("expected zero rows")
	}
}

func TestParseCSVEmpty(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""))
	if err == nil {
		t.Fatalf("expected error for empty input")
	}
}

func TestParseCSVRaggedRow(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("a,b\n1,2\n3\n"))
	if err == nil {
		t.Fatalf("expected error for ragged row")
	}
}
