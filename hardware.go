package memtag

// Hardware is the instruction-level tagging interface. Every argument named p
// is a tagged pointer (see Encode); the tag in p is the one written or
// checked. Implementations perform no validation beyond what the instruction
// itself would: misaligned addresses are undefined.
//
// The native implementation is a thin layer over the A64 MTE instructions; the
// emulator package provides a portable one.
type Hardware interface {
	// StoreTag sets the tag of the granule at p (STG).
	StoreTag(p uintptr)
	// StoreTagPair sets the tag of the two granules at p (ST2G).
	StoreTagPair(p uintptr)
	// StoreZeroTag sets the tag of the granule at p and zeroes it (STZG).
	StoreZeroTag(p uintptr)
	// StoreZeroTagPair sets the tag of the two granules at p and zeroes them
	// (STZ2G).
	StoreZeroTagPair(p uintptr)
	// StoreTagData sets the tag of the granule at p and writes lo and hi as
	// its two data words in the same step (STGP).
	StoreTagData(p uintptr, lo, hi uint64)
	// LoadTag returns p with its tag replaced by the tag stored for the
	// granule at p (LDG).
	LoadTag(p uintptr) uintptr
	// ZeroBlock zeroes the zero block at p and sets all of its granule tags
	// (DC GZVA). p must be aligned to ZeroBlockSize.
	ZeroBlock(p uintptr)
	// ZeroBlockSize returns the DC zero block size in bytes, or 0 if block
	// zeroing is prohibited (DCZID_EL0).
	ZeroBlockSize() int
	// NextTag returns p with its tag advanced to the next included tag (ADDG).
	NextTag(p uintptr) uintptr
	// RandomTag returns p with a random included tag (IRG).
	RandomTag(p uintptr) uintptr
	// Zero clears n bytes through p. The access is tag checked.
	Zero(p uintptr, n int)
	// Copy moves n bytes from src to dst. Both accesses are tag checked.
	Copy(dst, src uintptr, n int)
}

// Platform reads and writes the process-wide tag control state.
type Platform interface {
	// SetTagControl installs mode and the included-tags mask together.
	SetTagControl(mode Mode, included TagMask) error
	// TagControl returns the installed mode and included-tags mask.
	TagControl() (Mode, TagMask, error)
}
