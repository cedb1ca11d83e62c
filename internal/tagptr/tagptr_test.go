package tagptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		addr uintptr
		tag  uint8
		want uintptr
	}{
		{"zero", 0, 0, 0},
		{"plain", 0x0000_7fff_1234_5670, 7, 0x0700_7fff_1234_5670},
		{"max tag", 0x1000, 15, 0x0f00_0000_0000_1000},
		{"tag masked", 0x1000, 0x3a, 0x0a00_0000_0000_1000},
		{"old tag replaced", 0x0500_0000_0000_2000, 3, 0x0300_0000_0000_2000},
		{"high bits cleared", 0xffff_0000_0000_2000, 1, 0x0100_0000_0000_2000},
		{"low 48 preserved", 0x0000_ffff_ffff_ffff, 0, 0x0000_ffff_ffff_ffff},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Encode(tc.addr, tc.tag))
		})
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	addrs := []uintptr{0, 0x10, 0x7fff_ffff_fff0, 0x0000_ffff_ffff_fff0}
	for _, addr := range addrs {
		for tag := uint8(0); tag < 16; tag++ {
			p := Encode(addr, tag)
			gotAddr, gotTag := Decode(p)
			assert.Equal(t, addr, gotAddr)
			assert.Equal(t, tag, gotTag)
			assert.Equal(t, addr, Strip(p))
		}
	}
}

func TestAlign(t *testing.T) {
	assert.Equal(t, uintptr(64), AlignDown(127, 64))
	assert.Equal(t, uintptr(128), AlignUp(65, 64))
	assert.Equal(t, uintptr(128), AlignUp(128, 64))
	assert.Equal(t, uintptr(0), AlignDown(15, 16))
}

func TestChooseIncluded(t *testing.T) {
	t.Run("AllIncluded", func(t *testing.T) {
		for tag := uint8(0); tag < 16; tag++ {
			assert.Equal(t, (tag+1)%16, ChooseIncluded(tag, 1, 0xffff))
			assert.Equal(t, tag, ChooseIncluded(tag, 0, 0xffff))
		}
	})

	t.Run("SkipsExcluded", func(t *testing.T) {
		// Tag 0 reserved.
		assert.Equal(t, uint8(1), ChooseIncluded(15, 1, 0xfffe))
		assert.Equal(t, uint8(1), ChooseIncluded(0, 0, 0xfffe))
	})

	t.Run("SingleTag", func(t *testing.T) {
		assert.Equal(t, uint8(9), ChooseIncluded(9, 1, 1<<9))
		assert.Equal(t, uint8(9), ChooseIncluded(3, 1, 1<<9))
	})

	t.Run("NoneIncluded", func(t *testing.T) {
		assert.Equal(t, uint8(0), ChooseIncluded(5, 1, 0))
	})
}
