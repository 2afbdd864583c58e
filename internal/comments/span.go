package comments

import (
	"errors"
	"fmt"
)

// Span describes a region of text to delete.
type Span struct {
	From int // rune index of the first character
	To   int // rune index one past the last character
}

// Len returns the number of runes covered by the span.
func (s Span) Len() int {
	return s.To - s.From
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.From, s.To)
}

// Scanner detects removable spans in a text string.
// Spans are only meaningful for the exact text that was scanned.
type Scanner interface {
	Scan(text string) ([]Span, error)
}

// ScannerFunc adapts a plain function to the Scanner interface.
type ScannerFunc func(text string) ([]Span, error)

// Scan calls f(text).
func (f ScannerFunc) Scan(text string) ([]Span, error) {
	return f(text)
}

// ErrParse is returned when a scanner automaton reaches a transition that
// its comment bookkeeping cannot honour. It indicates broken wiring, never
// malformed input.
var ErrParse = errors.New("parse error")

// ErrOutOfRange is returned by Remove when a span does not fit the text.
var ErrOutOfRange = errors.New("span out of range")

// ErrOverlapping is returned by Remove when two spans share characters.
var ErrOverlapping = errors.New("spans overlapping")
