package comments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemove(t *testing.T) {
	tests := []struct {
		name  string
		input string
		spans []Span
		want  string
	}{
		{
			name:  "no spans",
			input: "keep me\n",
			want:  "keep me\n",
		},
		{
			name:  "unsorted spans",
			input: "012345#789\n#abcd\nefghi#jkl\n",
			spans: []Span{{From: 22, To: 26}, {From: 6, To: 10}, {From: 11, To: 16}},
			want:  "012345\n\nefghi\n",
		},
		{
			name:  "touching spans",
			input: "abcdef",
			spans: []Span{{From: 2, To: 4}, {From: 0, To: 2}},
			want:  "ef",
		},
		{
			name:  "empty span",
			input: "abc",
			spans: []Span{{From: 1, To: 1}},
			want:  "abc",
		},
		{
			name:  "span up to end",
			input: "yes #test",
			spans: []Span{{From: 4, To: 9}},
			want:  "yes ",
		},
		{
			name:  "whole input",
			input: "abc",
			spans: []Span{{From: 0, To: 3}},
			want:  "",
		},
		{
			name:  "multi-byte runes",
			input: "héllo # wörld\nx",
			spans: []Span{{From: 6, To: 13}},
			want:  "héllo \nx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Remove(tt.input, tt.spans)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRemove_LeavesCallerSpansAlone(t *testing.T) {
	spans := []Span{{From: 4, To: 5}, {From: 0, To: 1}}
	_, err := Remove("abcdef", spans)
	require.NoError(t, err)
	assert.Equal(t, []Span{{From: 4, To: 5}, {From: 0, To: 1}}, spans)
}

func TestRemove_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		spans  []Span
		target error
	}{
		{"overlapping", "1234567890", []Span{{From: 0, To: 5}, {From: 3, To: 7}}, ErrOverlapping},
		{"overlapping unsorted", "1234567890", []Span{{From: 3, To: 7}, {From: 0, To: 5}}, ErrOverlapping},
		{"contained", "1234567890", []Span{{From: 0, To: 9}, {From: 2, To: 3}}, ErrOverlapping},
		{"past end", "12345", []Span{{From: 3, To: 10}, {From: 11, To: 16}}, ErrOutOfRange},
		{"one past end", "12345", []Span{{From: 0, To: 6}}, ErrOutOfRange},
		{"reversed", "12345", []Span{{From: 3, To: 2}}, ErrOutOfRange},
		{"negative", "12345", []Span{{From: -1, To: 2}}, ErrOutOfRange},
		{"counts runes not bytes", "ééé", []Span{{From: 0, To: 4}}, ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Remove(tt.input, tt.spans)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			assert.Empty(t, got)
		})
	}
}

func TestSpan(t *testing.T) {
	sp := Span{From: 3, To: 7}
	assert.Equal(t, 4, sp.Len())
	assert.Equal(t, "[3,7)", sp.String())
}
