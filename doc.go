// Package memtag drives ARM Memory Tagging Extension (MTE) primitives over
// caller-owned memory.
//
// MTE associates a 4-bit allocation tag with every 16-byte granule of memory
// and a 4-bit pointer tag with the top byte of every pointer. When checking is
// enabled, an access whose pointer tag differs from the granule's tag faults.
// This package exposes the tagging variants that applications and allocators
// pick between, plus the process-wide control that decides what a mismatch
// does.
//
// # Quick Start
//
// On an MTE capable linux/arm64 host:
//
//	e, err := memtag.Native()
//	if err != nil {
//	    // no MTE: fall back to untagged allocation
//	}
//	e.Controller().SetMode(memtag.ModeSync)
//
//	buf, _ := unix.Mmap(-1, 0, 4096, unix.PROT_READ|unix.PROT_WRITE|0x20 /* PROT_MTE */,
//	    unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
//	r := memtag.NewRegion(buf)
//	e.StoreTag(r, 3)
//	p := memtag.Encode(r.Base(), 3) // accesses through p pass the check
//
// Everywhere else, the emulator package provides a software machine with the
// same contract:
//
//	m := emulator.New(emulator.WithInitialControl(memtag.ModeSync, memtag.AllTags))
//	ctl, _ := memtag.NewController(m)
//	e := memtag.New(m, ctl)
//
// # Tagging Variants
//
//	StoreTag             one STG per granule, data untouched
//	StoreTagPair         one ST2G per 32 bytes, data untouched
//	StoreTagZero         STG pass, then zero through the tagged pointer
//	StoreTagPairZero     ST2G pass, then zero through the tagged pointer
//	StoreTagZeroCombined one STGP per granule: tag and zero words together
//	ZeroTag              one STZG per granule
//	ZeroTagPair          one STZ2G per 32 bytes
//	StoreZeroOnly        plain zeroing, no tags (baseline)
//	StoreTagPrefetch     STG head and tail, DC GZVA per interior block
//	Randomize            IRG then ADDG chain, adjacent granules differ
//
// # Preconditions
//
// Lengths must be multiples of the granularity an operation works in and
// regions must start on a granule boundary. Violations are programming
// errors: the engine logs them and panics with a typed error
// (*AlignmentError, *BaseAlignmentError, *LengthMismatchError) before any
// memory is written. A platform that rejects a mode change makes the
// controller panic with *ModeError.
//
// # Concurrency
//
// Tag stores on disjoint regions may run concurrently. The fault mode is
// process global; changing it, including inside MigrateDiscard, races with
// every tagged access in the process.
package memtag
