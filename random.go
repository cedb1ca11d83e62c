package memtag

import "time"

// Randomize stamps r with a sequence of tags in which adjacent granules
// differ. The first tag is drawn by the hardware from the included-tags mask;
// each following tag is the next included tag after its predecessor. It
// returns the first tag.
//
// With a mask that admits a single tag every granule gets that tag; with an
// empty mask every granule gets tag 0. len(r) must be a multiple of
// GranuleSize.
func (e *Engine) Randomize(r Region) Tag {
	e.require(OpRandomize, r, GranuleSize)

	first := TagOf(e.hw.RandomTag(r.Base()))
	e.randomize(r, first)
	return first
}

// RandomizeFrom is Randomize with a caller-chosen first tag, which makes the
// sequence deterministic for a given mask. first is used even if the mask
// excludes it.
func (e *Engine) RandomizeFrom(r Region, first Tag) {
	e.require(OpRandomize, r, GranuleSize)
	e.randomize(r, first)
}

func (e *Engine) randomize(r Region, tag Tag) {
	start := time.Now()

	for c := newCursor(r); c.valid(); c.advance(GranuleSize) {
		p := Encode(c.addr(), tag)
		e.hw.StoreTag(p)
		tag = TagOf(e.hw.NextTag(p))
	}

	e.metrics.RecordTagWrite(OpRandomize, r.Len(), time.Since(start))
}
