// Package stream opens the input and output of a strip run, falling back to
// the standard streams when no path is given.
package stream

import (
	"io"
	"os"

	"golang.org/x/term"
)

// OpenInput opens the file at path, or returns std when path is empty.
// Closing the returned reader never closes std.
func OpenInput(path string, std io.Reader) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(std), nil
	}
	return os.Open(path)
}

// Output is the destination of a strip run. A file destination is created
// on the first Write (or on Close when nothing was written), so a run that
// fails before producing output never truncates an existing file.
type Output struct {
	path string
	std  io.Writer
	f    *os.File
}

// OpenOutput returns an Output writing to the file at path, or to std when
// path is empty. Closing it never closes std.
func OpenOutput(path string, std io.Writer) *Output {
	return &Output{path: path, std: std}
}

func (o *Output) writer() (io.Writer, error) {
	if o.path == "" {
		return o.std, nil
	}
	if o.f == nil {
		f, err := os.Create(o.path)
		if err != nil {
			return nil, err
		}
		o.f = f
	}
	return o.f, nil
}

// Write implements io.Writer.
func (o *Output) Write(p []byte) (int, error) {
	w, err := o.writer()
	if err != nil {
		return 0, err
	}
	return w.Write(p)
}

// Close finishes the output, creating an empty file if nothing was written.
func (o *Output) Close() error {
	if _, err := o.writer(); err != nil {
		return err
	}
	return o.Discard()
}

// Discard releases the output without creating a file that was not yet
// opened. It is the error path counterpart of Close.
func (o *Output) Discard() error {
	if o.f == nil {
		return nil
	}
	err := o.f.Close()
	o.f = nil
	return err
}

// IsTerminal reports whether r is a file attached to a terminal, i.e. the
// user is expected to type the text.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
