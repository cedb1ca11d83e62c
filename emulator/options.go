package emulator

import "github.com/hupe1980/memtag"

type options struct {
	blockSize int
	seed      uint64
	mode      memtag.Mode
	included  memtag.TagMask
}

// Option configures a Machine.
type Option func(*options)

// WithBlockSize sets the zero block size reported to the engine, in bytes.
// It must be zero (block zeroing prohibited) or a power of two of at least 16.
//
// Defaults to 64, the common Cortex value.
func WithBlockSize(n int) Option {
	return func(o *options) {
		o.blockSize = n
	}
}

// WithSeed seeds the random tag generator.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithInitialControl sets the tag control state the machine starts with.
// Defaults to ModeNone with no included tags, the state of a process that
// never enabled tagging.
func WithInitialControl(mode memtag.Mode, included memtag.TagMask) Option {
	return func(o *options) {
		o.mode = mode
		o.included = included
	}
}
