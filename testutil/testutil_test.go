package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/memtag"
)

func TestLength(t *testing.T) {
	rng := NewRNG(4711)

	for i := 0; i < 100; i++ {
		n := rng.Length(8, memtag.PairSize)
		assert.Zero(t, n%memtag.PairSize)
		assert.GreaterOrEqual(t, n, memtag.PairSize)
		assert.LessOrEqual(t, n, 8*memtag.PairSize)
	}
}

func TestFill(t *testing.T) {
	rng := NewRNG(4711)

	buf := make([]byte, 256)
	rng.Fill(buf)

	assert.NotContains(t, buf, byte(0))
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	a := make([]byte, 32)
	rng.Fill(a)

	rng.Reset()
	b := make([]byte, 32)
	rng.Fill(b)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestNewEngine(t *testing.T) {
	m, e := NewEngine(t)
	require.NotNil(t, e)

	assert.Equal(t, memtag.ModeSync, e.Controller().Mode())
	assert.Equal(t, memtag.AllTags, e.Controller().IncludedTags())

	r := NewRNG(1).Region(m, 64)
	assert.Equal(t, 64, r.Len())
	assert.Zero(t, r.Base()%memtag.GranuleSize)
}
