package comments

import (
	"fmt"
	"log/slog"
)

// Action is the side effect a scanner transition has on the comment being
// tracked.
type Action int

const (
	// ActionNone leaves the comment bookkeeping untouched.
	ActionNone Action = iota
	// ActionCommentStarts opens a comment at the current position.
	ActionCommentStarts
	// ActionCommentCouldStart opens a tentative comment at the current
	// position. It must later be confirmed, closed or aborted.
	ActionCommentCouldStart
	// ActionCommentConfirm turns a tentative comment into a real one,
	// keeping its original start.
	ActionCommentConfirm
	// ActionCommentAbort drops a tentative comment without emitting a span.
	ActionCommentAbort
	// ActionCommentEnds closes the comment before the current rune.
	ActionCommentEnds
	// ActionCommentEndsAfter closes the comment after the current rune.
	ActionCommentEndsAfter
)

var actionNames = [...]string{
	ActionNone:              "none",
	ActionCommentStarts:     "comment-starts",
	ActionCommentCouldStart: "comment-could-start",
	ActionCommentConfirm:    "comment-confirm",
	ActionCommentAbort:      "comment-abort",
	ActionCommentEnds:       "comment-ends",
	ActionCommentEndsAfter:  "comment-ends-after",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Step is the transition function of a scanner automaton. ok is false once
// the input is exhausted, in which case r is meaningless. A Step must be
// total: every state has a defined successor for every input, including
// end of input.
type Step[S comparable] func(state S, r rune, ok bool) (S, Action)

type pendingKind int

const (
	notInComment pendingKind = iota
	tentative
	confirmed
)

// pending tracks the comment a scan is currently inside, if any.
type pending struct {
	kind  pendingKind
	start int
}

// apply performs action a at rune position pos, appending any finished span.
func (p *pending) apply(a Action, pos int, spans []Span) ([]Span, error) {
	switch a {
	case ActionNone:
	case ActionCommentStarts:
		*p = pending{kind: confirmed, start: pos}
	case ActionCommentCouldStart:
		*p = pending{kind: tentative, start: pos}
	case ActionCommentConfirm:
		if p.kind != tentative {
			return spans, fmt.Errorf("%w: %s at %d without a tentative comment", ErrParse, a, pos)
		}
		p.kind = confirmed
	case ActionCommentAbort:
		*p = pending{}
	case ActionCommentEnds, ActionCommentEndsAfter:
		if p.kind == notInComment {
			return spans, fmt.Errorf("%w: %s at %d outside a comment", ErrParse, a, pos)
		}
		end := pos
		if a == ActionCommentEndsAfter {
			end++
		}
		spans = append(spans, Span{From: p.start, To: end})
		*p = pending{}
	default:
		return spans, fmt.Errorf("%w: unknown %s at %d", ErrParse, a, pos)
	}
	return spans, nil
}

// Scan runs an automaton over input, visiting every rune exactly once and
// then the end-of-input symbol. Positions are rune indices, so a comment
// closed by the end-of-input transition ends at the rune count of input.
func Scan[S comparable](input string, start, end S, step Step[S]) ([]Span, error) {
	var (
		spans []Span
		p     pending
		err   error
	)
	state := start
	pos := 0
	for _, r := range input {
		if state == end {
			break
		}
		var a Action
		state, a = step(state, r, true)
		if spans, err = p.apply(a, pos, spans); err != nil {
			return nil, err
		}
		pos++
	}
	if state != end {
		var a Action
		state, a = step(state, 0, false)
		if spans, err = p.apply(a, pos, spans); err != nil {
			return nil, err
		}
		if state != end {
			return nil, fmt.Errorf("%w: automaton did not stop at end of input", ErrParse)
		}
	}
	slog.Debug("comments: scan finished", "runes", pos, "spans", len(spans))
	return spans, nil
}
