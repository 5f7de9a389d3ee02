// Package outwriter provides the CLI's output writer: a sticky-first-error
// wrapper (adapted from socutil.ErrWriter) plus a small helper for emitting
// one diagnostic per line and counting how many were written.
package outwriter

import "io"

// ErrWriter wraps a writer, tracking its last error and refusing further
// writes once one occurs.
type ErrWriter struct {
	io.Writer
	Err error
}

// Write passes through to Writer if Err is nil, retaining any returned error.
func (ew *ErrWriter) Write(p []byte) (n int, err error) {
	if ew.Err == nil {
		n, ew.Err = ew.Writer.Write(p)
	}
	return n, ew.Err
}

// Diagnostics writes one line per diagnostic string to w, each terminated
// with "\n", stopping at the first write error. It returns the number of
// lines successfully written.
func Diagnostics(w io.Writer, lines []string) (int, error) {
	ew := &ErrWriter{Writer: w}
	n := 0
	for _, line := range lines {
		_, _ = ew.Write([]byte(line))
		_, _ = ew.Write([]byte("\n"))
		if ew.Err != nil {
			return n, ew.Err
		}
		n++
	}
	return n, nil
}
