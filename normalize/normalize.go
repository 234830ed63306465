// Package normalize bounds the serialized size of a capture.
package normalize

import (
	"fmt"
	"unicode/utf8"
)

const (
	DefaultLimit      = 5000
	MinPracticalLimit = 1000
	// SnippetFloor is the shortest text_snippet truncation will leave.
	SnippetFloor = 500
)

// Record is what Normalize needs from a capture.
type Record interface {
	// Size is the length in bytes of the serialized record.
	Size() (int, error)
	TextSnippet() (string, bool)
	SetTextSnippet(s string)
	SetNote(note string)
}

func Note(limitChars int) string {
	return fmt.Sprintf("Truncated to ~%d chars for portability", limitChars)
}

// Normalize makes one best-effort pass: when the record is over limitChars it
// gets a note, and a text_snippet longer than half the limit is cut to
// max(500, limitChars/4) characters. The size is not checked again, so a record
// dominated by other fields can stay over the limit.
func Normalize(rec Record, limitChars int) (truncated bool, err error) {
	size, err := rec.Size()
	if err != nil {
		return false, err
	}

	if size <= limitChars {
		return false, nil
	}

	rec.SetNote(Note(limitChars))

	snippet, ok := rec.TextSnippet()
	if ok && snippet != "" && utf8.RuneCountInString(snippet)*2 > limitChars {
		rec.SetTextSnippet(truncate(snippet, SnippetLimit(limitChars)))
	}

	return true, nil
}

// SnippetLimit is the text_snippet length kept when a record is truncated.
func SnippetLimit(limitChars int) int {
	n := limitChars / 4
	if n < SnippetFloor {
		return SnippetFloor
	}

	return n
}

func truncate(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}

	return s
}
