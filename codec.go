package memtag

import "github.com/hupe1980/memtag/internal/tagptr"

// AddressMask selects the 48-bit linear address of a pointer.
const AddressMask = tagptr.AddressMask

// Encode returns addr carrying tag in bits 56-59. Bits 48-63 of addr are
// cleared first, the low 48 bits are kept as is, and tag is masked to four
// bits.
func Encode(addr uintptr, tag Tag) uintptr {
	return tagptr.Encode(addr, uint8(tag))
}

// Decode splits a tagged pointer into its linear address and tag.
func Decode(p uintptr) (uintptr, Tag) {
	addr, tag := tagptr.Decode(p)
	return addr, Tag(tag)
}

// Strip returns p without its tag.
func Strip(p uintptr) uintptr {
	return tagptr.Strip(p)
}

// TagOf returns the tag carried by p.
func TagOf(p uintptr) Tag {
	return Tag(tagptr.Tag(p))
}
