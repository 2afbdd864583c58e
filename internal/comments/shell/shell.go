// Package shell finds comments in shell-like text: '#' to end of line,
// outside single or double quoted strings. A '#!' at the very start of the
// input is a shebang line, not a comment, but a later '#' on that line still
// starts one.
package shell

import "github.com/gonkalabs/stripcomments/internal/comments"

type state int

const (
	stateStart state = iota
	stateNormal
	stateShebangOrComment
	stateShebang
	stateComment
	stateStringDouble
	stateStringDoubleEscaped
	stateStringSingle
	stateStringSingleEscaped
	stateEnd
)

// Scanner is the comments.Scanner for the shell dialect.
var Scanner comments.Scanner = comments.ScannerFunc(Scan)

// Scan returns the spans of all comments in input. A span starts at the '#'
// and stops before the terminating '\n'.
func Scan(input string) ([]comments.Span, error) {
	return comments.Scan(input, stateStart, stateEnd, step)
}

func step(from state, c rune, ok bool) (state, comments.Action) {
	if !ok {
		switch from {
		case stateComment:
			return stateEnd, comments.ActionCommentEnds
		case stateShebangOrComment:
			return stateEnd, comments.ActionCommentAbort
		default:
			return stateEnd, comments.ActionNone
		}
	}

	switch from {
	case stateStart:
		if c == '#' {
			return stateShebangOrComment, comments.ActionCommentCouldStart
		}
		return normal(c)
	case stateNormal:
		return normal(c)
	case stateShebangOrComment:
		switch c {
		case '!':
			return stateShebang, comments.ActionCommentAbort
		case '\n':
			return stateNormal, comments.ActionCommentEnds
		default:
			return stateComment, comments.ActionCommentConfirm
		}
	case stateShebang:
		if c == '\n' {
			return stateNormal, comments.ActionNone
		}
		if next, a := normal(c); next != stateNormal {
			return next, a
		}
		return stateShebang, comments.ActionNone
	case stateComment:
		if c == '\n' {
			return stateNormal, comments.ActionCommentEnds
		}
		return stateComment, comments.ActionNone
	case stateStringDouble:
		switch c {
		case '"':
			return stateNormal, comments.ActionNone
		case '\\':
			return stateStringDoubleEscaped, comments.ActionNone
		}
		return stateStringDouble, comments.ActionNone
	case stateStringDoubleEscaped:
		return stateStringDouble, comments.ActionNone
	case stateStringSingle:
		switch c {
		case '\'':
			return stateNormal, comments.ActionNone
		case '\\':
			return stateStringSingleEscaped, comments.ActionNone
		}
		return stateStringSingle, comments.ActionNone
	case stateStringSingleEscaped:
		return stateStringSingle, comments.ActionNone
	}
	return stateEnd, comments.ActionNone
}

// normal is the transition out of ordinary code.
func normal(c rune) (state, comments.Action) {
	switch c {
	case '#':
		return stateComment, comments.ActionCommentStarts
	case '"':
		return stateStringDouble, comments.ActionNone
	case '\'':
		return stateStringSingle, comments.ActionNone
	}
	return stateNormal, comments.ActionNone
}
