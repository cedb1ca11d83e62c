package emulator

import "fmt"

// TagCheckFault describes a data access whose pointer tag did not match the
// tag of the granule it touched.
type TagCheckFault struct {
	// Addr is the tagged address of the first mismatching byte.
	Addr       uintptr
	PointerTag uint8
	MemoryTag  uint8
	Write      bool
}

func (f *TagCheckFault) Error() string {
	access := "read"
	if f.Write {
		access = "write"
	}
	return fmt.Sprintf("tag check fault: %s at %#x: pointer tag %d, memory tag %d", access, f.Addr, f.PointerTag, f.MemoryTag)
}

// AlignmentFault describes a tag instruction issued on an address that is not
// aligned to the unit it operates on.
type AlignmentFault struct {
	Addr  uintptr
	Align int
}

func (f *AlignmentFault) Error() string {
	return fmt.Sprintf("alignment fault: %#x is not %d-byte aligned", f.Addr, f.Align)
}
