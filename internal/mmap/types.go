package mmap

import "errors"

// AccessPattern is a paging hint for a View.
//
// There is no DONTNEED hint: on anonymous memory it drops the pages together
// with their tags.
type AccessPattern int

const (
	AccessDefault AccessPattern = iota
	// AccessSequential suits whole-region tagging passes.
	AccessSequential
	// AccessRandom suits sparse tag probes.
	AccessRandom
	// AccessWillNeed faults the pages in ahead of a pass.
	AccessWillNeed
)

var (
	// ErrClosed is returned when attempting to access a closed mapping.
	ErrClosed = errors.New("mmap: mapping is closed")
	// ErrInvalidSize is returned when the requested size is not positive.
	ErrInvalidSize = errors.New("mmap: invalid size")
	// ErrOutOfBounds is returned for a view that does not fit the mapping.
	ErrOutOfBounds = errors.New("mmap: out of bounds")
	// ErrMisaligned is returned for a view that would split a tag granule.
	ErrMisaligned = errors.New("mmap: view not granule aligned")
	// ErrTaggingUnsupported is returned when PROT_MTE mappings are not available.
	ErrTaggingUnsupported = errors.New("mmap: tagged mappings not supported")
)
