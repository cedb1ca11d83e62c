package benchmark_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/memtag"
	"github.com/hupe1980/memtag/emulator"
)

// ============================================================================
// TAGGING VARIANT BENCHMARKS
// ============================================================================
//
// Each variant tags (and possibly zeroes) the same region so their costs can
// be compared directly. StoreZeroOnly is the untagged baseline. Numbers from
// the emulator measure the engine walk plus shadow table updates, not real
// tag store throughput; run on an MTE host for those.

var sizes = []int{4 << 10, 64 << 10, 1 << 20}

type variant struct {
	name string
	fn   func(e *memtag.Engine, r memtag.Region)
}

var variants = []variant{
	{"stg", func(e *memtag.Engine, r memtag.Region) { e.StoreTag(r, 1) }},
	{"st2g", func(e *memtag.Engine, r memtag.Region) { e.StoreTagPair(r, 1) }},
	{"stg+memset", func(e *memtag.Engine, r memtag.Region) { e.StoreTagZero(r, 1) }},
	{"st2g+memset", func(e *memtag.Engine, r memtag.Region) { e.StoreTagPairZero(r, 1) }},
	{"stgp", func(e *memtag.Engine, r memtag.Region) { e.StoreTagZeroCombined(r, 1) }},
	{"stzg", func(e *memtag.Engine, r memtag.Region) { e.ZeroTag(r, 1) }},
	{"stz2g", func(e *memtag.Engine, r memtag.Region) { e.ZeroTagPair(r, 1) }},
	{"memset", func(e *memtag.Engine, r memtag.Region) { e.StoreZeroOnly(r) }},
	{"stg+dc-gzva", func(e *memtag.Engine, r memtag.Region) { e.StoreTagPrefetch(r, 1) }},
	{"random", func(e *memtag.Engine, r memtag.Region) { e.RandomizeFrom(r, 1) }},
}

func BenchmarkTaggingVariants(b *testing.B) {
	for _, size := range sizes {
		for _, v := range variants {
			b.Run(fmt.Sprintf("%s/%dKiB", v.name, size>>10), func(b *testing.B) {
				m, e := setup(b)
				r := memtag.NewRegion(m.Alloc(size))
				// The baseline writes untagged; checks stay off so it
				// measures zeroing alone.
				e.Controller().SetMode(memtag.ModeNone)

				b.ReportAllocs()
				b.SetBytes(int64(size))
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					v.fn(e, r)
				}
			})
		}
	}
}

func BenchmarkMigrate(b *testing.B) {
	for _, size := range sizes {
		b.Run(fmt.Sprintf("discard/%dKiB", size>>10), func(b *testing.B) {
			m, e := setup(b)
			src := memtag.NewRegion(m.Alloc(size))
			dst := memtag.NewRegion(m.Alloc(size))
			e.RandomizeFrom(src, 1)

			b.ReportAllocs()
			b.SetBytes(int64(size))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				e.MigrateDiscard(src, dst)
			}
		})

		b.Run(fmt.Sprintf("preserving/%dKiB", size>>10), func(b *testing.B) {
			m, e := setup(b)
			src := memtag.NewRegion(m.Alloc(size))
			dst := memtag.NewRegion(m.Alloc(size))
			e.RandomizeFrom(src, 1)

			b.ReportAllocs()
			b.SetBytes(int64(size))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				e.MigratePreserving(src, dst)
			}
		})
	}
}

// BenchmarkModeSwitch measures one round trip through the tag control.
func BenchmarkModeSwitch(b *testing.B) {
	_, e := setup(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Controller().SetMode(memtag.ModeAsync)
		e.Controller().SetMode(memtag.ModeSync)
	}
}

func setup(b *testing.B) (*emulator.Machine, *memtag.Engine) {
	b.Helper()

	m := emulator.New(emulator.WithInitialControl(memtag.ModeSync, memtag.AllTags))
	ctl, err := memtag.NewController(m)
	if err != nil {
		b.Fatalf("controller: %v", err)
	}
	return m, memtag.New(m, ctl)
}
