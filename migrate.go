package memtag

import "time"

// MigrateDiscard copies the bytes of src to the start of dst with tag
// checking disabled. Tags of dst are left as they were; the tags of src do
// not carry over.
//
// The controller is switched to ModeNone for the copy and then back through
// SetMode(ModeSync), which also reinstalls AllTags as the included mask. Other
// goroutines relying on a stable mode must not run tagged accesses
// concurrently. dst must be at least as long as src.
func (e *Engine) MigrateDiscard(src, dst Region) {
	if dst.Len() < src.Len() {
		e.abort(&LengthMismatchError{Op: OpMigrateDiscard, Src: src.Len(), Dst: dst.Len()})
	}
	start := time.Now()

	e.ctl.SetModeWithTags(ModeNone, e.ctl.IncludedTags())
	e.hw.Copy(dst.Base(), src.Base(), src.Len())
	e.ctl.SetMode(ModeSync)

	e.logger.LogMigration(OpMigrateDiscard, src.Len())
	e.metrics.RecordMigration(OpMigrateDiscard, src.Len(), time.Since(start))
}

// MigratePreserving copies src to the start of dst granule by granule,
// carrying each granule's tag along. For every granule the source tag is
// read, written to the destination granule, and only then is the data copied
// through the freshly tagged destination pointer. A destination granule never
// holds new data under a stale tag.
//
// Source and destination are walked with independent cursors. len(src) must
// be a multiple of GranuleSize and dst must be at least as long as src.
func (e *Engine) MigratePreserving(src, dst Region) {
	e.require(OpMigratePreserving, src, GranuleSize)
	if dst.Base()%GranuleSize != 0 {
		e.abort(&BaseAlignmentError{Op: OpMigratePreserving, Base: dst.Base()})
	}
	if dst.Len() < src.Len() {
		e.abort(&LengthMismatchError{Op: OpMigratePreserving, Src: src.Len(), Dst: dst.Len()})
	}
	start := time.Now()

	s, d := newCursor(src), newCursor(dst)
	for ; s.valid(); s.advance(GranuleSize) {
		sp := e.hw.LoadTag(s.addr())
		dp := Encode(d.addr(), TagOf(sp))
		e.hw.StoreTag(dp)
		e.hw.Copy(dp, sp, GranuleSize)
		d.advance(GranuleSize)
	}

	e.logger.LogMigration(OpMigratePreserving, src.Len())
	e.metrics.RecordMigration(OpMigratePreserving, src.Len(), time.Since(start))
}
