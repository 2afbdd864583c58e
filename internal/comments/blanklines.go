package comments

import "unicode"

// BlankLines is the Scanner for whitespace-only lines.
var BlankLines Scanner = ScannerFunc(ScanBlankLines)

// ScanBlankLines returns one span per line that holds nothing but
// horizontal whitespace. Each span covers the line and its trailing '\n',
// so removing it drops the line entirely. A last line without '\n' counts
// when it is not empty. Runs of blank lines produce adjacent spans.
func ScanBlankLines(input string) ([]Span, error) {
	var spans []Span
	lineStart := 0
	blank := true
	pos := 0
	for _, r := range input {
		switch {
		case r == '\n':
			if blank {
				spans = append(spans, Span{From: lineStart, To: pos + 1})
			}
			lineStart = pos + 1
			blank = true
		case !unicode.IsSpace(r):
			blank = false
		}
		pos++
	}
	if blank && pos > lineStart {
		spans = append(spans, Span{From: lineStart, To: pos})
	}
	return spans, nil
}
