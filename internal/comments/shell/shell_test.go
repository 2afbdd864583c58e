package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonkalabs/stripcomments/internal/comments"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []comments.Span
	}{
		{"empty", "", nil},
		{"no comments", "echo hello\nexit 0\n", nil},
		{"shebang", "#!/bin/bash\nyes\n", nil},
		{"line comment", "yes # line comment\n yes no\n", []comments.Span{{From: 4, To: 18}}},
		{"comment inside shebang line", "#!/bin/bash #shebang\nyes\n", []comments.Span{{From: 12, To: 20}}},
		{"string before comment", "yes 'string\"inner string\"' #test\n", []comments.Span{{From: 27, To: 32}}},
		{"comment at end of input", "yes #test", []comments.Span{{From: 4, To: 9}}},
		{"lone hash", "#", nil},
		{"hash then newline", "#\nx", []comments.Span{{From: 0, To: 1}}},
		{"comment at start", "# hi\nx", []comments.Span{{From: 0, To: 4}}},
		{"hash in double quotes", `echo "a # b" # c`, []comments.Span{{From: 13, To: 16}}},
		{"escaped double quote", `echo "a \" # b" # c`, []comments.Span{{From: 16, To: 19}}},
		{"hash in single quotes", `echo 'x#y'`, nil},
		{"escaped single quote", `echo 'a \' # b'`, nil},
		{"bang later in input", "a\n#!x", []comments.Span{{From: 2, To: 5}}},
		{"two comments", "x #a\n#b", []comments.Span{{From: 2, To: 4}, {From: 5, To: 7}}},
		{"multi-byte", "é # ü\n", []comments.Span{{From: 2, To: 5}}},
		{"unterminated string", `echo "# not`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Scan(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScan_StripsCleanly(t *testing.T) {
	input := "#!/bin/sh\n# setup\nexport A=\"#1\" # first\necho $A\n"
	spans, err := Scanner.Scan(input)
	require.NoError(t, err)

	got, err := comments.Remove(input, spans)
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\n\nexport A=\"#1\" \necho $A\n", got)
}
