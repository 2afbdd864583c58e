// Package clike finds comments in C-like text: '//' line comments and
// '/* */' block comments, outside single or double quoted literals.
// Block comments do not nest.
package clike

import "github.com/gonkalabs/stripcomments/internal/comments"

type state int

const (
	stateNormal state = iota
	stateSlash
	stateLineComment
	stateBlockComment
	stateBlockCommentStar
	stateStringDouble
	stateStringDoubleEscaped
	stateStringSingle
	stateStringSingleEscaped
	stateEnd
)

// Scanner is the comments.Scanner for the C dialect.
var Scanner comments.Scanner = comments.ScannerFunc(Scan)

// Scan returns the spans of all comments in input. Line comment spans stop
// before the '\n'; block comment spans include the closing "*/".
func Scan(input string) ([]comments.Span, error) {
	return comments.Scan(input, stateNormal, stateEnd, step)
}

func step(from state, c rune, ok bool) (state, comments.Action) {
	if !ok {
		switch from {
		case stateLineComment, stateBlockComment, stateBlockCommentStar:
			return stateEnd, comments.ActionCommentEnds
		case stateSlash:
			return stateEnd, comments.ActionCommentAbort
		default:
			return stateEnd, comments.ActionNone
		}
	}

	switch from {
	case stateNormal:
		switch c {
		case '/':
			return stateSlash, comments.ActionCommentCouldStart
		case '"':
			return stateStringDouble, comments.ActionNone
		case '\'':
			return stateStringSingle, comments.ActionNone
		}
		return stateNormal, comments.ActionNone
	case stateSlash:
		switch c {
		case '/':
			return stateLineComment, comments.ActionCommentConfirm
		case '*':
			return stateBlockComment, comments.ActionCommentConfirm
		case '"':
			return stateStringDouble, comments.ActionCommentAbort
		case '\'':
			return stateStringSingle, comments.ActionCommentAbort
		}
		return stateNormal, comments.ActionCommentAbort
	case stateLineComment:
		if c == '\n' {
			return stateNormal, comments.ActionCommentEnds
		}
		return stateLineComment, comments.ActionNone
	case stateBlockComment:
		if c == '*' {
			return stateBlockCommentStar, comments.ActionNone
		}
		return stateBlockComment, comments.ActionNone
	case stateBlockCommentStar:
		switch c {
		case '/':
			return stateNormal, comments.ActionCommentEndsAfter
		case '*':
			return stateBlockCommentStar, comments.ActionNone
		}
		return stateBlockComment, comments.ActionNone
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
