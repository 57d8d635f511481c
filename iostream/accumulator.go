package iostream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/k0sproject/filter/errstring"
	"github.com/k0sproject/filter/log"
)

// DefaultChunkSize is the size of the read window used when none is given.
const DefaultChunkSize = 42

var (
	// ErrRead is returned when the input stream fails mid-read.
	ErrRead = errstring.New("read")
	// ErrOutOfMemory is returned when the input buffer can not be grown.
	ErrOutOfMemory = errstring.New("out of memory")

	errInvalidCount = errors.New("reader returned an invalid byte count")
)

// Accumulator reads an io.Reader to exhaustion into a single growing buffer.
type Accumulator struct {
	log.LoggerInjectable

	r         io.Reader
	chunkSize int
	maxSize   int
}

// AccumulatorOption is a functional option for NewAccumulator.
type AccumulatorOption func(*Accumulator)

// WithChunkSize sets the size of the read window. Non-positive values are ignored.
func WithChunkSize(size int) AccumulatorOption {
	return func(a *Accumulator) {
		if size > 0 {
			a.chunkSize = size
		}
	}
}

// WithMaxSize limits the buffer to size bytes. Growing past the limit fails
// with ErrOutOfMemory. Zero means unbounded.
func WithMaxSize(size int) AccumulatorOption {
	return func(a *Accumulator) {
		if size >= 0 {
			a.maxSize = size
		}
	}
}

// NewAccumulator returns an Accumulator reading from r.
func NewAccumulator(r io.Reader, opts ...AccumulatorOption) *Accumulator {
	a := &Accumulator{r: r, chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ReadAll reads chunks from the underlying reader until it reports end of
// stream, appending each chunk to the buffer. A read of zero bytes without an
// error also ends the stream. On failure the partially read data is dropped
// and nil is returned with an error wrapping ErrRead or ErrOutOfMemory.
func (a *Accumulator) ReadAll(ctx context.Context) ([]byte, error) {
	window := make([]byte, a.chunkSize)
	buf := []byte{}
	var chunks int

	for {
		if err := ctx.Err(); err != nil {
			return nil, ErrRead.Wrap(err)
		}

		n, err := a.r.Read(window)
		if n < 0 || n > len(window) {
			return nil, ErrRead.Wrapf("%w: %d", errInvalidCount, n)
		}
		if n > 0 {
			chunks++
			grown, gerr := a.grow(buf, n)
			if gerr != nil {
				a.Log().Debug("input buffer growth failed", log.KeyBytes, len(buf), log.KeyChunks, chunks, log.KeyError, gerr)
				return nil, gerr
			}
			buf = append(grown, window[:n]...)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			a.Log().Debug("input read failed", log.KeyBytes, len(buf), log.KeyChunks, chunks, log.KeyError, err)
			return nil, ErrRead.Wrap(err)
		}
		if n == 0 {
			break
		}
	}

	a.Log().Debug("input accumulated", log.KeyBytes, len(buf), log.KeyChunks, chunks)

	return buf, nil
}

// grow makes room for n more bytes in buf, doubling the capacity as needed.
func (a *Accumulator) grow(buf []byte, n int) (out []byte, err error) {
	need := len(buf) + n
	if a.maxSize > 0 && need > a.maxSize {
		return nil, ErrOutOfMemory.Wrapf("input exceeds the limit of %d bytes", a.maxSize)
	}
	if need <= cap(buf) {
		return buf, nil
	}

	newCap := max(2*cap(buf), need, a.chunkSize)
	if a.maxSize > 0 {
		newCap = min(newCap, a.maxSize)
	}

	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			out = nil
			err = ErrOutOfMemory.Wrap(fmt.Errorf("grow buffer to %d bytes: %w", newCap, rerr))
		}
	}()

	grown := make([]byte, len(buf), newCap)
	copy(grown, buf)

	return grown, nil
}

// ReadAll is a shortcut for NewAccumulator(r, opts...).ReadAll(ctx).
func ReadAll(ctx context.Context, r io.Reader, opts ...AccumulatorOption) ([]byte, error) {
	return NewAccumulator(r, opts...).ReadAll(ctx)
}
