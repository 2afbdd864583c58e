// Package markup finds comments in XML-like text ("<!-- ... -->").
//
// Quotes only delimit strings inside tags, where they wrap attribute values;
// in character data they are plain text. Attribute values have no escape
// character since XML uses entity references instead. CDATA sections are
// skipped so comment delimiters inside them stay untouched.
package markup

import "github.com/gonkalabs/stripcomments/internal/comments"

type state int

const (
	stateText state = iota
	stateOpen
	stateBang
	stateBangDash
	stateTag
	stateAttrDouble
	stateAttrSingle
	stateComment
	stateCommentDash
	stateCommentDashDash
	stateCData
	stateCDataBracket
	stateCDataBrackets
	stateEnd
)

// Scanner is the comments.Scanner for the XML dialect.
var Scanner comments.Scanner = comments.ScannerFunc(Scan)

// Scan returns the spans of all comments in input, each covering the whole
// "<!--" to "-->" run.
func Scan(input string) ([]comments.Span, error) {
	return comments.Scan(input, stateText, stateEnd, step)
}

func step(from state, c rune, ok bool) (state, comments.Action) {
	if !ok {
		switch from {
		case stateComment, stateCommentDash, stateCommentDashDash:
			return stateEnd, comments.ActionCommentEnds
		case stateOpen, stateBang, stateBangDash:
			return stateEnd, comments.ActionCommentAbort
		default:
			return stateEnd, comments.ActionNone
		}
	}

	switch from {
	case stateText:
		if c == '<' {
			return stateOpen, comments.ActionCommentCouldStart
		}
		return stateText, comments.ActionNone
	case stateOpen:
		if c == '!' {
			return stateBang, comments.ActionNone
		}
		return tag(c, comments.ActionCommentAbort)
	case stateBang:
		switch c {
		case '-':
			return stateBangDash, comments.ActionNone
		case '[':
			return stateCData, comments.ActionCommentAbort
		}
		return tag(c, comments.ActionCommentAbort)
	case stateBangDash:
		if c == '-' {
			return stateComment, comments.ActionCommentConfirm
		}
		return tag(c, comments.ActionCommentAbort)
	case stateTag:
		return tag(c, comments.ActionNone)
	case stateAttrDouble:
		if c == '"' {
			return stateTag, comments.ActionNone
		}
		return stateAttrDouble, comments.ActionNone
	case stateAttrSingle:
		if c == '\'' {
			return stateTag, comments.ActionNone
		}
		return stateAttrSingle, comments.ActionNone
	case stateComment:
		if c == '-' {
			return stateCommentDash, comments.ActionNone
		}
		return stateComment, comments.ActionNone
	case stateCommentDash:
		if c == '-' {
			return stateCommentDashDash, comments.ActionNone
		}
		return stateComment, comments.ActionNone
	case stateCommentDashDash:
		switch c {
		case '>':
			return stateText, comments.ActionCommentEndsAfter
		case '-':
			return stateCommentDashDash, comments.ActionNone
		}
		return stateComment, comments.ActionNone
	case stateCData:
		if c == ']' {
			return stateCDataBracket, comments.ActionNone
		}
		return stateCData, comments.ActionNone
	case stateCDataBracket:
		if c == ']' {
			return stateCDataBrackets, comments.ActionNone
		}
		return stateCData, comments.ActionNone
	case stateCDataBrackets:
		switch c {
		case '>':
			return stateText, comments.ActionNone
		case ']':
			return stateCDataBrackets, comments.ActionNone
		}
		return stateCData, comments.ActionNone
	}
	return stateEnd, comments.ActionNone
}

// tag is the transition for a rune inside a tag, applying a on the way.
func tag(c rune, a comments.Action) (state, comments.Action) {
	switch c {
	case '>':
		return stateText, a
	case '"':
		return stateAttrDouble, a
	case '\'':
		return stateAttrSingle, a
	case '<':
		// a stray '<' starts a new tag; any tentative start is replaced
		return stateOpen, comments.ActionCommentCouldStart
	}
	return stateTag, a
}
