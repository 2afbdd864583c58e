package stream

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenInput_Std(t *testing.T) {
	in, err := OpenInput("", strings.NewReader("from stdin"))
	require.NoError(t, err)
	defer in.Close()

	data, err := io.ReadAll(in)
	require.NoError(t, err)
	assert.Equal(t, "from stdin", string(data))
}

func TestOpenInput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.sh")
	require.NoError(t, os.WriteFile(path, []byte("echo # hi\n"), 0o644))

	in, err := OpenInput(path, strings.NewReader("ignored"))
	require.NoError(t, err)
	defer in.Close()

	data, err := io.ReadAll(in)
	require.NoError(t, err)
	assert.Equal(t, "echo # hi\n", string(data))
}

func TestOpenInput_Missing(t *testing.T) {
	_, err := OpenInput(filepath.Join(t.TempDir(), "missing"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOutput_Std(t *testing.T) {
	var buf bytes.Buffer
	out := OpenOutput("", &buf)
	_, err := io.WriteString(out, "result")
	require.NoError(t, err)
	require.NoError(t, out.Close())
	assert.Equal(t, "result", buf.String())
}

func TestOutput_FileCreatedOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	out := OpenOutput(path, nil)

	_, err := os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist, "file must not exist before the first write")

	_, err = io.WriteString(out, "result")
	require.NoError(t, err)
	require.NoError(t, out.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "result", string(data))
}

func TestOutput_CloseCreatesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	out := OpenOutput(path, nil)
	require.NoError(t, out.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestOutput_DiscardKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0o644))

	out := OpenOutput(path, nil)
	require.NoError(t, out.Discard())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}

func TestOutput_CreateError(t *testing.T) {
	out := OpenOutput(filepath.Join(t.TempDir(), "no", "such", "dir", "out.txt"), nil)
	_, err := out.Write([]byte("x"))
	assert.Error(t, err)
	assert.Error(t, out.Close())
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(strings.NewReader("x")))

	f, err := os.CreateTemp(t.TempDir(), "plain")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f))
}
