package memtag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegion(t *testing.T) {
	buf := make([]byte, 96)
	r := NewRegion(buf)

	assert.Equal(t, 96, r.Len())
	assert.Equal(t, 6, r.Granules())
	assert.Same(t, &buf[0], &r.Bytes()[0])

	sub := r.Sub(32, 48)
	assert.Equal(t, 48, sub.Len())
	assert.Equal(t, r.Base()+32, sub.Base())
	assert.Equal(t, 3, sub.Granules())

	assert.Panics(t, func() { r.Sub(64, 64) })
	assert.Panics(t, func() { r.Sub(-1, 16) })
}

func TestRegionEmpty(t *testing.T) {
	r := NewRegion(nil)
	assert.Zero(t, r.Len())
	assert.Zero(t, r.Base())
	assert.Zero(t, r.Granules())
	assert.Zero(t, r.Sub(0, 0).Len())
}

func TestCursor(t *testing.T) {
	r := NewRegion(make([]byte, 64))

	var addrs []uintptr
	for c := newCursor(r); c.valid(); c.advance(GranuleSize) {
		addrs = append(addrs, c.addr())
	}
	require.Len(t, addrs, 4)
	assert.Equal(t, r.Base(), addrs[0])
	assert.Equal(t, r.Base()+48, addrs[3])

	t.Run("Overrun", func(t *testing.T) {
		c := newCursor(NewRegion(make([]byte, 48)))
		c.advance(PairSize)
		assert.True(t, c.valid())
		assert.Panics(t, func() { c.advance(PairSize) })
	})
}
