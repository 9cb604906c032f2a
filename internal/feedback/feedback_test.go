package feedback

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestRecorder(t *testing.T) (*Recorder, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feedback.txt")
	return NewRecorder(path), path
}

func TestAppendWritesOneBlock(t *testing.T) {
	rec, path := newTestRecorder(t)
	entry := Entry{Name: "Ada", Email: "ada@example.com", Rating: DefaultRating, Suggestions: "More charts"}
	if err := rec.Append(entry); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "Name: Ada\nEmail: ada@example.com\nRating: 3 ⭐\nSuggestions: More charts\n\n"
	if string(data) != want {
		t.Fatalf("unexpected log content:\n%q", string(data))
	}
}

func TestAppendAccumulates(t *testing.T) {
	rec, path := newTestRecorder(t)
	first := Entry{Name: "Ada", Email: "a@example.com", Rating: 5, Suggestions: "ok"}
	second := Entry{Name: "Bob", Email: "b@example.com", Rating: 1, Suggestions: "slow"}
	if err := rec.Append(first); err != nil {
		t.Fatal(err)
	}
	if err := rec.Append(second); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	blocks := strings.Split(strings.TrimSuffix(string(data), "\n\n"), "\n\n")
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if !strings.HasPrefix(blocks[1], "Name: Bob\n") {
		t.Fatalf("second block malformed:\n%s", blocks[1])
	}
}

func TestAppendRejectsIncomplete(t *testing.T) {
	incomplete := []Entry{
		{Email: "a@example.com", Rating: 3, Suggestions: "x"},
		{Name: "Ada", Rating: 3, Suggestions: "x"},
		{Name: "Ada", Email: "a@example.com", Rating: 3},
		{Name: "   ", Email: "a@example.com", Rating: 3, Suggestions: "x"},
	}
	for i, entry := range incomplete {
		rec, path := newTestRecorder(t)
		err := rec.Append(entry)
		if !errors.Is(err, ErrIncomplete) {
			t.Fatalf("case %d: expected ErrIncomplete, got %v", i, err)
		}
		if _, statErr := os.Stat(path); !errors.Is(statErr, os.ErrNotExist) {
			t.Fatalf("case %d: rejected entry must write nothing", i)
		}
	}
}

func TestClampRating(t *testing.T) {
	if ClampRating(0) != MinRating {
		t.Fatalf("low rating not clamped")
	}
	if ClampRating(9) != MaxRating {
		t.Fatalf("high rating not clamped")
	}
	if ClampRating(4) != 4 {
		t.Fatalf("valid rating changed")
	}
}
