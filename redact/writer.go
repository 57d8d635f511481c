package redact

import (
	"bytes"
	"io"

	"github.com/k0sproject/filter/byteslice"
)

type redactWriter struct {
	w      io.Writer
	match  []byte
	buf    bytes.Buffer
	closed bool
}

// Writer returns an io.WriteCloser that holds everything written to it and
// writes the masked data to w on Close.
func Writer(w io.Writer, match string) io.WriteCloser {
	return &redactWriter{w: w, match: []byte(match)}
}

func (rw *redactWriter) Write(p []byte) (int, error) {
	if rw.closed {
		return 0, io.ErrClosedPipe
	}
	return rw.buf.Write(p) //nolint:wrapcheck
}

// Close masks the buffered data and writes it to the underlying writer.
func (rw *redactWriter) Close() error {
	if rw.closed {
		return nil
	}
	rw.closed = true
	_, err := byteslice.CensorTo(rw.w, rw.buf.Bytes(), rw.match)
	rw.buf.Reset()
	return err //nolint:wrapcheck
}
