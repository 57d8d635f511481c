package filter

import (
	"github.com/creasty/defaults"
	"github.com/k0sproject/filter/log"
)

// Options is a struct that holds the variadic options for the filter package.
type Options struct {
	// ChunkSize is the size of a single read from the input.
	ChunkSize int `default:"42"`
	// MaxSize limits the size of the input buffer, 0 means unbounded.
	MaxSize int
	Logger  log.Logger
}

// Apply applies the supplied options to the Options struct.
func (o *Options) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// SetDefaults implements defaults.Setter, it is called by defaults.Set after
// the tagged defaults have been applied.
func (o *Options) SetDefaults() {
	if o.MaxSize < 0 {
		o.MaxSize = 0
	}
	if o.Logger == nil {
		o.Logger = log.Null
	}
}

// Option is a functional option type for the Options struct.
type Option func(*Options)

// WithChunkSize is a functional option that sets the read chunk size.
func WithChunkSize(size int) Option {
	return func(o *Options) {
		o.ChunkSize = size
	}
}

// WithMaxSize is a functional option that limits how large the input can grow.
func WithMaxSize(size int) Option {
	return func(o *Options) {
		o.MaxSize = size
	}
}

// WithLogger is a functional option that sets the logger.
func WithLogger(logger log.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// NewOptions creates a new Options struct with the supplied options applied over the defaults.
func NewOptions(opts ...Option) *Options {
	options := &Options{}
	options.Apply(opts...)
	if options.ChunkSize < 0 {
		options.ChunkSize = 0
	}
	_ = defaults.Set(options)
	return options
}
