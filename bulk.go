package memtag

import (
	"time"

	"github.com/hupe1980/memtag/internal/tagptr"
)

// StoreTagPrefetch sets the tag of every granule in r like StoreTag, using
// whole zero-block instructions for the interior of large regions.
//
// The region is split into a head up to the first zero-block boundary, an
// interior of whole blocks, and a tail. Head and tail are tagged one granule
// at a time; each interior block is tagged and zeroed by a single block
// instruction. Interior data is therefore zero afterwards while head and tail
// data are untouched. Regions shorter than two blocks, or hosts where block
// zeroing is prohibited, take the granule path throughout.
//
// len(r) must be a multiple of GranuleSize.
func (e *Engine) StoreTagPrefetch(r Region, tag Tag) {
	e.require(OpStoreTagPrefetch, r, GranuleSize)
	start := time.Now()

	block := e.hw.ZeroBlockSize()
	if block < GranuleSize || r.Len() < 2*block {
		e.walk(r, GranuleSize, tag, e.hw.StoreTag)
	} else {
		e.prefetchWalk(r, block, tag)
	}

	e.metrics.RecordTagWrite(OpStoreTagPrefetch, r.Len(), time.Since(start))
}

func (e *Engine) prefetchWalk(r Region, block int, tag Tag) {
	b := uintptr(block)
	headEnd := tagptr.AlignUp(r.Base(), b)
	bodyEnd := tagptr.AlignDown(r.Base()+uintptr(r.Len()), b)

	c := newCursor(r)
	for ; c.addr() < headEnd; c.advance(GranuleSize) {
		e.hw.StoreTag(Encode(c.addr(), tag))
	}
	for ; c.addr() < bodyEnd; c.advance(block) {
		e.hw.ZeroBlock(Encode(c.addr(), tag))
	}
	for ; c.valid(); c.advance(GranuleSize) {
		e.hw.StoreTag(Encode(c.addr(), tag))
	}
}
