package memtag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/memtag"
	"github.com/hupe1980/memtag/emulator"
	"github.com/hupe1980/memtag/testutil"
)

func TestRandomize_AdjacentGranulesDiffer(t *testing.T) {
	rng := testutil.NewRNG(5)
	m, e := testutil.NewEngine(t, emulator.WithSeed(5))

	for i := 0; i < 50; i++ {
		r := rng.Region(m, rng.Length(64, memtag.GranuleSize))

		first := e.Randomize(r)

		tags := e.Tags(r)
		assert.Equal(t, first, tags[0])
		for j := 1; j < len(tags); j++ {
			assert.NotEqual(t, tags[j-1], tags[j], "granules %d and %d", j-1, j)
		}
	}
}

func TestRandomize_HonoursMask(t *testing.T) {
	rng := testutil.NewRNG(6)
	m, e := testutil.NewEngine(t)
	e.Controller().SetModeWithTags(memtag.ModeSync, memtag.AllTags.Exclude(0))

	for i := 0; i < 50; i++ {
		r := rng.Region(m, rng.Length(64, memtag.GranuleSize))
		e.Randomize(r)
		assert.NotContains(t, e.Tags(r), memtag.Tag(0))
	}
}

func TestRandomize_SingleAndEmptyMask(t *testing.T) {
	m, e := testutil.NewEngine(t)
	r := memtag.NewRegion(m.Alloc(128))

	e.Controller().SetModeWithTags(memtag.ModeSync, memtag.MaskOf(13))
	assert.Equal(t, memtag.Tag(13), e.Randomize(r))
	assert.Equal(t, uniform(8, 13), e.Tags(r))

	e.Controller().SetModeWithTags(memtag.ModeSync, 0)
	assert.Equal(t, memtag.Tag(0), e.Randomize(r))
	assert.Equal(t, uniform(8, 0), e.Tags(r))
}

func TestRandomizeFrom_Deterministic(t *testing.T) {
	m, e := testutil.NewEngine(t)
	r := memtag.NewRegion(m.Alloc(20 * memtag.GranuleSize))

	e.RandomizeFrom(r, 14)

	tags := e.Tags(r)
	require.Len(t, tags, 20)
	for i, tag := range tags {
		assert.Equal(t, memtag.Tag((14+i)%memtag.NumTags), tag)
	}

	s := m.Stats()
	assert.Equal(t, int64(20), s.STG)
	assert.Equal(t, int64(20), s.ADDG)
	assert.Zero(t, s.IRG)
}

func TestRandomizeFrom_ExcludedFirstTag(t *testing.T) {
	m, e := testutil.NewEngine(t)
	e.Controller().SetModeWithTags(memtag.ModeSync, memtag.MaskOf(2, 4))
	r := memtag.NewRegion(m.Alloc(64))

	e.RandomizeFrom(r, 0)

	assert.Equal(t, []memtag.Tag{0, 2, 4, 2}, e.Tags(r))
}

func TestRandomize_SeededMachinesAgree(t *testing.T) {
	m1, e1 := testutil.NewEngine(t, emulator.WithSeed(77))
	m2, e2 := testutil.NewEngine(t, emulator.WithSeed(77))
	r1 := memtag.NewRegion(m1.Alloc(512))
	r2 := memtag.NewRegion(m2.Alloc(512))

	assert.Equal(t, e1.Randomize(r1), e2.Randomize(r2))
	assert.Equal(t, e1.Tags(r1), e2.Tags(r2))
}
