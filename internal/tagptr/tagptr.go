//go:build amd64 || arm64 || ppc64 || ppc64le || riscv64 || s390x || loong64 || mips64 || mips64le

package tagptr

const (
	// Shift is the bit position of the lowest tag bit in a tagged pointer.
	Shift = 56

	// TagBits is the width of an allocation tag.
	TagBits = 4

	// TagMask selects the tag value after shifting it down by Shift.
	TagMask = 1<<TagBits - 1

	// AddressMask selects the linear address. Bits 48-63 (the top byte and
	// the unused bits below it) never take part in address translation.
	AddressMask = 0x0000_ffff_ffff_ffff
)

// Encode returns addr carrying tag in bits 56-59. Any bits of addr above the
// 48-bit linear address are cleared first and only the low four bits of tag
// are used.
func Encode(addr uintptr, tag uint8) uintptr {
	return addr&AddressMask | uintptr(tag&TagMask)<<Shift
}

// Decode splits a tagged pointer into its linear address and tag.
func Decode(p uintptr) (uintptr, uint8) {
	return Strip(p), Tag(p)
}

// Strip drops the tag byte of p.
func Strip(p uintptr) uintptr {
	return p & AddressMask
}

// Tag extracts the tag of p.
func Tag(p uintptr) uint8 {
	return uint8(p>>Shift) & TagMask
}

// AlignDown rounds v down to a multiple of align, which must be a power of two.
func AlignDown(v, align uintptr) uintptr {
	return v &^ (align - 1)
}

// AlignUp rounds v up to a multiple of align, which must be a power of two.
func AlignUp(v, align uintptr) uintptr {
	return (v + align - 1) &^ (align - 1)
}

// ChooseIncluded advances tag by offset steps, where every step moves to the
// next tag (mod 16) that is set in included. With offset zero an excluded tag
// is moved forward to the next included one. If no tag is included the result
// is zero.
//
// This is the tag selection performed by the ADDG and IRG instructions, with
// the include mask standing in for GCR_EL1.Exclude inverted.
func ChooseIncluded(tag uint8, offset uint8, included uint16) uint8 {
	if included == 0 {
		return 0
	}
	tag &= TagMask
	if offset == 0 {
		for included&(1<<tag) == 0 {
			tag = (tag + 1) & TagMask
		}
		return tag
	}
	for ; offset > 0; offset-- {
		tag = (tag + 1) & TagMask
		for included&(1<<tag) == 0 {
			tag = (tag + 1) & TagMask
		}
	}
	return tag
}
