package testutil

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/memtag"
	"github.com/hupe1980/memtag/emulator"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Tag returns a uniformly drawn tag.
func (r *RNG) Tag() memtag.Tag {
	r.mu.Lock()
	defer r.mu.Unlock()
	return memtag.Tag(r.rand.Intn(memtag.NumTags))
}

// Length returns a length between unit and maxUnits*unit bytes that is a
// multiple of unit.
func (r *RNG) Length(maxUnits, unit int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return (1 + r.rand.Intn(maxUnits)) * unit
}

// Fill overwrites dst with random bytes, none of them zero, so a later
// zeroing pass is visible byte by byte.
// Locks only once per call.
func (r *RNG) Fill(dst []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = byte(1 + r.rand.Intn(255))
	}
}

// NewEngine returns an emulated machine in ModeSync with every tag included,
// and an engine driving it.
func NewEngine(tb testing.TB, optFns ...emulator.Option) (*emulator.Machine, *memtag.Engine) {
	tb.Helper()

	optFns = append([]emulator.Option{emulator.WithInitialControl(memtag.ModeSync, memtag.AllTags)}, optFns...)
	m := emulator.New(optFns...)

	ctl, err := memtag.NewController(m)
	require.NoError(tb, err)

	return m, memtag.New(m, ctl)
}

// Region allocates size bytes from m, fills them from r, and wraps them.
func (r *RNG) Region(m *emulator.Machine, size int) memtag.Region {
	buf := m.Alloc(size)
	r.Fill(buf)
	return memtag.NewRegion(buf)
}
