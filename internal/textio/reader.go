// Package textio provides the line-oriented input and output streams the
// decode driver reads from and writes to. An empty path selects standard
// input or standard output, so the tool composes in shell pipelines.
package textio

import (
	"bufio"
	"io"
	"os"
)

// Lines longer than this abort the read with bufio.ErrTooLong.
const maxLineBytes = 16 * 1024 * 1024

// Reader reads a stream line by line.
type Reader struct {
	f  *os.File // nil when reading stdin
	sc *bufio.Scanner
}

// Open returns a line reader for path. An empty path reads standard input,
// which is never closed by Close.
func Open(path string) (*Reader, error) {
	if path == "" {
		return newReader(os.Stdin, nil), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return newReader(f, f), nil
}

func newReader(r io.Reader, f *os.File) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Reader{f: f, sc: sc}
}

// Scan advances to the next line.
func (r *Reader) Scan() bool { return r.sc.Scan() }

// Text returns the current line without its trailing newline.
func (r *Reader) Text() string { return r.sc.Text() }

// Err returns the first error hit while scanning, if any.
func (r *Reader) Err() error { return r.sc.Err() }

// Close closes the underlying file, if one was opened.
func (r *Reader) Close() error {
	if r.f == nil {
		return nil
	}
	return r.f.Close()
}
