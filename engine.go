package memtag

import (
	"time"
)

// Engine applies tagging operations to caller-owned regions through a
// Hardware implementation.
//
// Every operation checks its preconditions before touching memory and
// panics with a typed error if they do not hold, so a rejected call leaves
// the region unchanged. Once started, an operation runs to completion;
// there is no partial result and nothing is rolled back.
//
// An Engine is not safe for concurrent use when a Controller mode change is
// involved; see Controller.
type Engine struct {
	hw      Hardware
	ctl     *Controller
	logger  *Logger
	metrics MetricsCollector
}

// New returns an Engine issuing instructions to hw. ctl is the mode context
// the migration operations switch; it must not be nil.
func New(hw Hardware, ctl *Controller, optFns ...Option) *Engine {
	if hw == nil || ctl == nil {
		panic("memtag: New requires hardware and a controller")
	}

	o := applyOptions(optFns)

	return &Engine{
		hw:      hw,
		ctl:     ctl,
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
}

// Controller returns the mode context of e.
func (e *Engine) Controller() *Controller {
	return e.ctl
}

// StoreTag sets the tag of every granule in r. Data is not modified.
// len(r) must be a multiple of GranuleSize.
func (e *Engine) StoreTag(r Region, tag Tag) {
	e.require(OpStoreTag, r, GranuleSize)
	start := time.Now()

	e.walk(r, GranuleSize, tag, e.hw.StoreTag)

	e.metrics.RecordTagWrite(OpStoreTag, r.Len(), time.Since(start))
}

// StoreTagPair sets the tag of every granule in r, two granules per step.
// Data is not modified. len(r) must be a multiple of PairSize.
func (e *Engine) StoreTagPair(r Region, tag Tag) {
	e.require(OpStoreTagPair, r, PairSize)
	start := time.Now()

	e.walk(r, PairSize, tag, e.hw.StoreTagPair)

	e.metrics.RecordTagWrite(OpStoreTagPair, r.Len(), time.Since(start))
}

// StoreTagZero tags r like StoreTag and then zeroes it through the tagged
// address in a second pass.
func (e *Engine) StoreTagZero(r Region, tag Tag) {
	e.require(OpStoreTagZero, r, GranuleSize)
	start := time.Now()

	e.walk(r, GranuleSize, tag, e.hw.StoreTag)
	e.hw.Zero(Encode(r.Base(), tag), r.Len())

	e.metrics.RecordTagWrite(OpStoreTagZero, r.Len(), time.Since(start))
}

// StoreTagPairZero tags r like StoreTagPair and then zeroes it through the
// tagged address in a second pass.
func (e *Engine) StoreTagPairZero(r Region, tag Tag) {
	e.require(OpStoreTagPairZero, r, PairSize)
	start := time.Now()

	e.walk(r, PairSize, tag, e.hw.StoreTagPair)
	e.hw.Zero(Encode(r.Base(), tag), r.Len())

	e.metrics.RecordTagWrite(OpStoreTagPairZero, r.Len(), time.Since(start))
}

// StoreTagZeroCombined writes two zero words together with the tag of each
// granule, so no granule is ever observable with the new tag and old data.
// len(r) must be a multiple of GranuleSize.
func (e *Engine) StoreTagZeroCombined(r Region, tag Tag) {
	e.require(OpStoreTagZeroCombined, r, GranuleSize)
	start := time.Now()

	for c := newCursor(r); c.valid(); c.advance(GranuleSize) {
		e.hw.StoreTagData(Encode(c.addr(), tag), 0, 0)
	}

	e.metrics.RecordTagWrite(OpStoreTagZeroCombined, r.Len(), time.Since(start))
}

// ZeroTag sets the tag of and zeroes every granule of r with one instruction
// per granule. len(r) must be a multiple of GranuleSize.
func (e *Engine) ZeroTag(r Region, tag Tag) {
	e.require(OpZeroTag, r, GranuleSize)
	start := time.Now()

	e.walk(r, GranuleSize, tag, e.hw.StoreZeroTag)

	e.metrics.RecordTagWrite(OpZeroTag, r.Len(), time.Since(start))
}

// ZeroTagPair is ZeroTag with two granules per instruction. len(r) must be a
// multiple of PairSize.
func (e *Engine) ZeroTagPair(r Region, tag Tag) {
	e.require(OpZeroTagPair, r, PairSize)
	start := time.Now()

	e.walk(r, PairSize, tag, e.hw.StoreZeroTagPair)

	e.metrics.RecordTagWrite(OpZeroTagPair, r.Len(), time.Since(start))
}

// StoreZeroOnly zeroes r through its untagged address without touching any
// tag. It is the baseline the tagging variants are measured against.
// len(r) must be a multiple of GranuleSize.
func (e *Engine) StoreZeroOnly(r Region) {
	e.require(OpStoreZeroOnly, r, GranuleSize)
	start := time.Now()

	e.hw.Zero(r.Base(), r.Len())

	e.metrics.RecordTagWrite(OpStoreZeroOnly, r.Len(), time.Since(start))
}

// LoadTag returns the tag of the granule containing addr. Any tag carried
// by addr is ignored.
func (e *Engine) LoadTag(addr uintptr) Tag {
	return TagOf(e.hw.LoadTag(Strip(addr)))
}

// Tags returns the tag of every granule of r in order.
func (e *Engine) Tags(r Region) []Tag {
	e.require(OpLoadTags, r, GranuleSize)

	tags := make([]Tag, 0, r.Granules())
	for c := newCursor(r); c.valid(); c.advance(GranuleSize) {
		tags = append(tags, TagOf(e.hw.LoadTag(c.addr())))
	}
	return tags
}

// walk issues store once per stride bytes of r with the cursor address
// tagged with tag.
func (e *Engine) walk(r Region, stride int, tag Tag, store func(p uintptr)) {
	for c := newCursor(r); c.valid(); c.advance(stride) {
		store(Encode(c.addr(), tag))
	}
}

// require aborts unless r starts on a granule boundary and its length is a
// multiple of multiple.
func (e *Engine) require(op Op, r Region, multiple int) {
	if r.Len()%multiple != 0 {
		e.abort(&AlignmentError{Op: op, Length: r.Len(), Multiple: multiple})
	}
	if r.Base()%GranuleSize != 0 {
		e.abort(&BaseAlignmentError{Op: op, Base: r.Base()})
	}
}

func (e *Engine) abort(err error) {
	e.logger.LogAbort(err)
	panic(err)
}
