package mem

import (
	"unsafe"
)

// Alignment is the default byte alignment: one 64-byte cache line, which is
// also a whole number of 16-byte tag granules.
const Alignment = 64

// AllocAlignedTo allocates a byte slice of the given size whose first byte is
// aligned to align, which must be a power of two. It returns nil for
// non-positive sizes or an invalid alignment.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAlignedTo(size, align int) []byte {
	if size <= 0 || align <= 0 || align&(align-1) != 0 {
		return nil
	}

	// Allocate size + align to ensure we can find an aligned offset.
	buf := make([]byte, size+align)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	a := uintptr(align)
	offset := (a - (addr & (a - 1))) & (a - 1)

	// Full slice expression: appending must never spill into the padding.
	return buf[offset : offset+uintptr(size) : offset+uintptr(size)]
}
