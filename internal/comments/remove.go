// Package comments holds the comment detection engine shared by the dialect
// scanners: the Span type, a generic single-pass automaton runner, the
// blank-line scanner and the span remover.
//
// Usage:
//
//	spans, err := shell.Scan(text)
//	// handle err
//	text, err = comments.Remove(text, spans)
package comments

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
)

// Remove deletes every span from input and returns the remaining text.
//
// Spans are sorted by From and validated as a whole before anything is
// deleted: each must satisfy From <= To <= rune count, and no two may
// overlap. Spans that merely touch are fine. Deletion runs back to front
// so that the offsets of spans not yet applied stay valid.
func Remove(input string, spans []Span) (string, error) {
	if len(spans) == 0 {
		return input, nil
	}

	sorted := slices.Clone(spans)
	slices.SortStableFunc(sorted, func(a, b Span) int {
		return cmp.Compare(a.From, b.From)
	})

	text := []rune(input)
	if err := checkSorted(len(text), sorted); err != nil {
		return "", err
	}

	for i := len(sorted) - 1; i >= 0; i-- {
		sp := sorted[i]
		text = slices.Delete(text, sp.From, sp.To)
	}
	slog.Debug("comments: removed spans", "spans", len(sorted), "runes", len(text))
	return string(text), nil
}

// checkSorted validates spans sorted ascending by From against a text of
// n runes.
func checkSorted(n int, spans []Span) error {
	for _, sp := range spans {
		if sp.From < 0 || sp.From > sp.To || sp.To > n {
			return fmt.Errorf("%w: %s in text of %d runes", ErrOutOfRange, sp, n)
		}
	}
	for i := 1; i < len(spans); i++ {
		if prev, cur := spans[i-1], spans[i]; prev.To > cur.From {
			return fmt.Errorf("%w: %s and %s", ErrOverlapping, prev, cur)
		}
	}
	return nil
}
