package redact

import (
	"bytes"
	"context"
	"io"

	"github.com/k0sproject/filter/byteslice"
	"github.com/k0sproject/filter/iostream"
)

type redactReader struct {
	r     io.Reader
	match []byte
	out   *bytes.Reader
	err   error
}

// Reader returns a new io.Reader that yields the contents of r with every
// match masked. The source is read to the end on the first call to Read, so
// matches are found regardless of how the source splits its data.
func Reader(r io.Reader, match string) io.Reader {
	return &redactReader{r: r, match: []byte(match)}
}

// Read implements the io.Reader interface.
func (rr *redactReader) Read(p []byte) (int, error) {
	if rr.err != nil {
		return 0, rr.err
	}
	if rr.out == nil {
		data, err := iostream.ReadAll(context.Background(), rr.r)
		if err != nil {
			rr.err = err
			return 0, err
		}
		byteslice.CensorInPlace(data, rr.match)
		rr.out = bytes.NewReader(data)
	}
	return rr.out.Read(p) //nolint:wrapcheck
}
