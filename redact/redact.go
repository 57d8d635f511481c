// Package redact provides helpers to mask a literal string in strings, readers and writers.
package redact

import (
	"io"

	"github.com/k0sproject/filter/byteslice"
)

// Redacter is implemented by types that can redact sensitive information from a string.
type Redacter interface {
	Redact(input string) string
	Reader(src io.Reader) io.Reader
	Writer(dst io.Writer) io.WriteCloser
}

type noopRedacter struct{}

func (r noopRedacter) Redact(s string) string         { return s }
func (r noopRedacter) Reader(src io.Reader) io.Reader { return src }
func (r noopRedacter) Writer(dst io.Writer) io.WriteCloser {
	return nopCloser{dst}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// StringRedacter returns a Redacter that replaces every non-overlapping
// occurrence of match with asterisks. An empty match returns a Redacter that
// passes everything through untouched.
func StringRedacter(match string) Redacter {
	if len(match) == 0 {
		return noopRedacter{}
	}
	return &stringRedacter{match: []byte(match)}
}

type stringRedacter struct {
	match []byte
}

func (r *stringRedacter) Redact(s string) string {
	return string(byteslice.Censor([]byte(s), r.match))
}

func (r *stringRedacter) Reader(src io.Reader) io.Reader {
	return Reader(src, string(r.match))
}

func (r *stringRedacter) Writer(dst io.Writer) io.WriteCloser {
	return Writer(dst, string(r.match))
}
