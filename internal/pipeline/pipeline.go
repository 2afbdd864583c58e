// Package pipeline wires the dialect scanners and the span remover into the
// full strip operation: scan comments, remove them, then optionally scan and
// remove the blank lines left behind.
package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gonkalabs/stripcomments/internal/comments"
	"github.com/gonkalabs/stripcomments/internal/comments/clike"
	"github.com/gonkalabs/stripcomments/internal/comments/markup"
	"github.com/gonkalabs/stripcomments/internal/comments/shell"
)

// Style selects the comment dialect.
type Style string

const (
	StyleC     Style = "c"
	StyleShell Style = "shell"
	StyleXML   Style = "xml"
)

// DefaultStyle is used when nothing else was configured.
const DefaultStyle = StyleShell

// scanners maps each style to its comment scanner.
var scanners = map[Style]comments.Scanner{
	StyleC:     clike.Scanner,
	StyleShell: shell.Scanner,
	StyleXML:   markup.Scanner,
}

// ParseStyle converts a style name ("c", "shell", "xml") into a Style.
// The empty string yields DefaultStyle.
func ParseStyle(name string) (Style, error) {
	s := Style(strings.ToLower(strings.TrimSpace(name)))
	if s == "" {
		return DefaultStyle, nil
	}
	if _, ok := scanners[s]; !ok {
		return "", fmt.Errorf("unknown comment style %q (want c, shell or xml)", name)
	}
	return s, nil
}

// Options controls a strip run. The zero value strips shell comments and
// keeps blank lines.
type Options struct {
	Style            Style
	RemoveBlankLines bool
}

// Result is the outcome of a strip run.
type Result struct {
	Text       string
	Comments   int // comment spans removed
	BlankLines int // blank lines removed
}

// Scan returns the comment spans of text in the given style.
func Scan(text string, style Style) ([]comments.Span, error) {
	if style == "" {
		style = DefaultStyle
	}
	sc, ok := scanners[style]
	if !ok {
		return nil, fmt.Errorf("unknown comment style %q", style)
	}
	return sc.Scan(text)
}

// Strip removes the comments of text and, if requested, the blank lines
// that remain afterwards. Each pass is validated on its own.
func Strip(text string, opts Options) (Result, error) {
	spans, err := Scan(text, opts.Style)
	if err != nil {
		return Result{}, fmt.Errorf("scan comments: %w", err)
	}
	text, err = comments.Remove(text, spans)
	if err != nil {
		return Result{}, fmt.Errorf("remove comments: %w", err)
	}
	res := Result{Comments: len(spans)}

	if opts.RemoveBlankLines {
		blanks, err := comments.BlankLines.Scan(text)
		if err != nil {
			return Result{}, fmt.Errorf("scan blank lines: %w", err)
		}
		text, err = comments.Remove(text, blanks)
		if err != nil {
			return Result{}, fmt.Errorf("remove blank lines: %w", err)
		}
		res.BlankLines = len(blanks)
	}

	res.Text = text
	slog.Debug("pipeline: stripped",
		"style", opts.Style,
		"comments", res.Comments,
		"blankLines", res.BlankLines,
	)
	return res, nil
}

// Run reads all of r, strips it and writes the result to w in one write.
// Nothing is written when reading or stripping fails.
func Run(r io.Reader, w io.Writer, opts Options) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("read input: %w", err)
	}
	res, err := Strip(string(data), opts)
	if err != nil {
		return Result{}, err
	}
	if _, err := io.WriteString(w, res.Text); err != nil {
		return Result{}, fmt.Errorf("write output: %w", err)
	}
	return res, nil
}
