package memtag

import (
	"fmt"
	"math/bits"
)

const (
	// GranuleSize is the number of bytes covered by one allocation tag.
	GranuleSize = 16

	// PairSize is the stride of the double-granule instructions.
	PairSize = 2 * GranuleSize

	// NumTags is the number of distinct tag values.
	NumTags = 16
)

// Tag is a 4-bit allocation tag. Only the low four bits are meaningful;
// operations mask larger values rather than rejecting them.
type Tag uint8

// Masked returns t reduced to its low four bits.
func (t Tag) Masked() Tag {
	return t & (NumTags - 1)
}

// TagMask is a set of tags, one bit per tag value. It names the tags the
// random tag generator may produce.
type TagMask uint16

// AllTags makes every tag eligible.
const AllTags TagMask = 0xffff

// MaskOf returns the mask containing exactly tags.
func MaskOf(tags ...Tag) TagMask {
	var m TagMask
	return m.Include(tags...)
}

// Has reports whether t is in m.
func (m TagMask) Has(t Tag) bool {
	return m&(1<<t.Masked()) != 0
}

// Include returns m with tags added.
func (m TagMask) Include(tags ...Tag) TagMask {
	for _, t := range tags {
		m |= 1 << t.Masked()
	}
	return m
}

// Exclude returns m with tags removed.
func (m TagMask) Exclude(tags ...Tag) TagMask {
	for _, t := range tags {
		m &^= 1 << t.Masked()
	}
	return m
}

// Count returns the number of tags in m.
func (m TagMask) Count() int {
	return bits.OnesCount16(uint16(m))
}

func (m TagMask) String() string {
	return fmt.Sprintf("%#04x", uint16(m))
}
