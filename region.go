package memtag

import (
	"fmt"
	"unsafe"
)

// Region is a caller-owned contiguous buffer. The engine reads and writes it
// in place but never allocates, frees, or resizes it. Holding the Region keeps
// the underlying memory reachable for the duration of a call.
type Region struct {
	buf  []byte
	base uintptr
}

// NewRegion wraps buf. The memory must stay valid while the Region is in use;
// for tagged memory that means a PROT_MTE mapping on real hardware.
func NewRegion(buf []byte) Region {
	if len(buf) == 0 {
		return Region{}
	}
	return Region{
		buf:  buf,
		base: uintptr(unsafe.Pointer(unsafe.SliceData(buf))), //nolint:gosec // address only; buf keeps the memory alive
	}
}

// Len returns the size of the region in bytes.
func (r Region) Len() int {
	return len(r.buf)
}

// Bytes returns the wrapped buffer.
func (r Region) Bytes() []byte {
	return r.buf
}

// Base returns the untagged address of the first byte. It is the only way to
// obtain a raw address from a Region and exists for Hardware implementations.
func (r Region) Base() uintptr {
	return r.base
}

// Granules returns the number of whole granules in r.
func (r Region) Granules() int {
	return len(r.buf) / GranuleSize
}

// Sub returns the n bytes starting at off. It panics if the range is out of
// bounds, like slicing does.
func (r Region) Sub(off, n int) Region {
	if off < 0 || n < 0 || off+n > len(r.buf) {
		panic(fmt.Sprintf("memtag: sub-region [%d:%d] out of range for length %d", off, off+n, len(r.buf)))
	}
	return NewRegion(r.buf[off : off+n : off+n])
}

// cursor walks a region from its base towards its end. Offsets are checked
// against the length so a stride that does not divide the length is caught
// instead of running past the buffer.
type cursor struct {
	base uintptr
	off  int
	end  int
}

func newCursor(r Region) cursor {
	return cursor{base: r.base, end: len(r.buf)}
}

func (c *cursor) valid() bool {
	return c.off < c.end
}

func (c *cursor) addr() uintptr {
	return c.base + uintptr(c.off)
}

func (c *cursor) advance(n int) {
	c.off += n
	if c.off > c.end {
		panic(fmt.Sprintf("memtag: cursor overrun: offset %d past end %d", c.off, c.end))
	}
}
