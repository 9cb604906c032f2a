// Package feedback validates the feedback form and appends accepted
// entries to a flat text log. The log is the only durable output of the
// whole dashboard: four labeled lines per entry, a blank line as separator,
// no schema beyond that.
package feedback

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Rating bounds and the slider default.
const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = 3
)

// ErrIncomplete rejects a submission with any required field empty.
var ErrIncomplete = errors.New("please provide your name, email, and suggestions before submitting")

// Entry is one immutable feedback record.
type Entry struct {
	Name        string
	Email       string
	Rating      int
	Suggestions string
}

// Validate accepts an entry only when name, email, and suggestions are all
// non-empty. The rating needs no validation: it always carries a valid
// value.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.Name) == "" || strings.TrimSpace(e.Email) == "" || strings.TrimSpace(e.Suggestions) == "" {
		return ErrIncomplete
	}
	return nil
}

// ClampRating forces a rating into [MinRating, MaxRating].
func ClampRating(r int) int {
	if r < MinRating {
		return MinRating
	}
	if r > MaxRating {
		return MaxRating
	}
	return r
}

// Recorder appends entries to the log file at a fixed path, creating the
// file on first write.
type Recorder struct {
	path string
}

// NewRecorder returns a recorder for the given log path.
func NewRecorder(path string) *Recorder {
	return &Recorder{path: path}
}

// Append validates the entry and writes its block in one Write call, so
// concurrent sessions produce consecutive, non-interleaved blocks. Nothing
// is written for a rejected entry.
func (r *Recorder) Append(e Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	block := fmt.Sprintf("Name: %s\nEmail: %s\nRating: %d ⭐\nSuggestions: %s\n\n",
		e.Name, e.Email, e.Rating, e.Suggestions)

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open feedback log: %w", err)
	}
	defer f.Close()
	if _, err := f.Write([]byte(block)); err != nil {
		return fmt.Errorf("write feedback: %w", err)
	}
	return nil
}
