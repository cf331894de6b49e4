package textio

import (
	"bufio"
	"os"
)

// Writer appends lines to a single shared sink. Writes are buffered; Close
// flushes and must run on every exit path, so callers defer it as soon as
// the writer is created.
type Writer struct {
	f      *os.File // nil when writing stdout
	bw     *bufio.Writer
	closed bool
}

// Create returns a line writer for path. An empty path writes to standard
// output, which is never closed by Close.
func Create(path string) (*Writer, error) {
	if path == "" {
		return &Writer{bw: bufio.NewWriter(os.Stdout)}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &Writer{f: f, bw: bufio.NewWriter(f)}, nil
}

// WriteLine writes s followed by a newline.
func (w *Writer) WriteLine(s string) error {
	if _, err := w.bw.WriteString(s); err != nil {
		return err
	}
	return w.bw.WriteByte('\n')
}

// Close flushes buffered output and closes the underlying file, if any.
// Close is idempotent.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	ferr := w.bw.Flush()
	if w.f != nil {
		if cerr := w.f.Close(); ferr == nil {
			ferr = cerr
		}
	}
	return ferr
}
