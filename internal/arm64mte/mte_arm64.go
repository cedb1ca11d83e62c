//go:build arm64 && !noasm

package arm64mte

// STG stores the tag of p to the granule at p.
func STG(p uintptr)

// ST2G stores the tag of p to the two granules starting at p.
func ST2G(p uintptr)

// STZG stores the tag of p to the granule at p and zeroes its data.
func STZG(p uintptr)

// STZ2G stores the tag of p to the two granules starting at p and zeroes
// their data.
func STZ2G(p uintptr)

// STGP stores the tag of p to the granule at p and writes lo and hi as its
// 16 data bytes.
func STGP(p uintptr, lo, hi uint64)

// LDG returns p with its tag replaced by the allocation tag of the granule
// at p.
func LDG(p uintptr) uintptr

// IRG returns p with a random tag drawn from the tags that GCR_EL1 does not
// exclude.
func IRG(p uintptr) uintptr

// ADDG returns p with its tag advanced to the next tag GCR_EL1 does not
// exclude.
func ADDG(p uintptr) uintptr

// DCGZVA zeroes the data and sets the tags of the zero block containing p to
// the tag of p.
func DCGZVA(p uintptr)

// DCZID returns the raw DCZID_EL0 register.
func DCZID() uint64
