package memtag

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is returned when the host cannot control memory tagging.
	ErrUnsupported = errors.New("memtag: memory tagging not supported")
)

// AlignmentError reports a region whose length is not a multiple of the
// granularity an operation works in. The engine panics with it.
type AlignmentError struct {
	Op       Op
	Length   int
	Multiple int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("memtag: %s: region length %d is not a multiple of %d", e.Op, e.Length, e.Multiple)
}

// BaseAlignmentError reports a region that does not start on a granule
// boundary. The engine panics with it.
type BaseAlignmentError struct {
	Op   Op
	Base uintptr
}

func (e *BaseAlignmentError) Error() string {
	return fmt.Sprintf("memtag: %s: region base %#x is not %d-byte aligned", e.Op, e.Base, GranuleSize)
}

// LengthMismatchError reports a migration destination shorter than its
// source. The engine panics with it.
type LengthMismatchError struct {
	Op  Op
	Src int
	Dst int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("memtag: %s: destination length %d is shorter than source length %d", e.Op, e.Dst, e.Src)
}

// ModeError indicates that the platform rejected a tag control change. The
// controller panics with it.
//
// The original underlying error can be accessed via errors.Unwrap.
type ModeError struct {
	Mode     Mode
	Included TagMask
	cause    error
}

func (e *ModeError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("memtag: cannot set mode %s with tags %s", e.Mode, e.Included)
	}
	return fmt.Sprintf("memtag: cannot set mode %s with tags %s: %v", e.Mode, e.Included, e.cause)
}

func (e *ModeError) Unwrap() error { return e.cause }
