// Package filter masks every occurrence of a literal string in a stream with asterisks.
package filter

import (
	"bufio"
	"context"
	"io"

	"github.com/k0sproject/filter/byteslice"
	"github.com/k0sproject/filter/iostream"
	"github.com/k0sproject/filter/log"
)

// Filter reads an input to the end and writes it out with every
// non-overlapping occurrence of the needle replaced by asterisks.
type Filter struct {
	log.LoggerInjectable

	needle  []byte
	options *Options
}

// New returns a Filter masking needle. An empty needle passes input through unchanged.
func New(needle string, opts ...Option) *Filter {
	options := NewOptions(opts...)
	f := &Filter{
		needle:  []byte(needle),
		options: options,
	}
	f.SetLogger(options.Logger)
	return f
}

// Needle returns the string the filter masks.
func (f *Filter) Needle() string {
	return string(f.needle)
}

// Run reads in until end of stream and then writes the masked data to out.
// Nothing is written if reading fails.
func (f *Filter) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	acc := iostream.NewAccumulator(in,
		iostream.WithChunkSize(f.options.ChunkSize),
		iostream.WithMaxSize(f.options.MaxSize),
	)
	f.InjectLoggerTo(acc, log.ComponentAttr("accumulator"))

	data, err := acc.ReadAll(ctx)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	n, matches, err := byteslice.CensorToCount(w, data, f.needle)
	if err != nil {
		return ErrWrite.Wrap(err)
	}
	if err := w.Flush(); err != nil {
		return ErrWrite.Wrap(err)
	}

	f.Log().Debug("input filtered", log.KeyBytes, n, log.KeyMatches, matches)

	return nil
}
