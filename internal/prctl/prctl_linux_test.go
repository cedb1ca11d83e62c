//go:build linux

package prctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControlWord(t *testing.T) {
	tests := []struct {
		name string
		c    Control
		want uintptr
	}{
		{"none no tags", Control{TCF: PR_MTE_TCF_NONE}, 0x1},
		{"sync all tags", Control{TCF: PR_MTE_TCF_SYNC, Included: 0xffff}, 0x1 | 0x2 | 0xffff<<3},
		{"async no zero", Control{TCF: PR_MTE_TCF_ASYNC, Included: 0xfffe}, 0x1 | 0x4 | 0xfffe<<3},
		{"stray tcf bits dropped", Control{TCF: 0x80 | PR_MTE_TCF_SYNC}, 0x1 | 0x2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.c.word())
		})
	}
}

func TestHasMTEStable(t *testing.T) {
	// Whatever the host reports, the answer must not change between calls.
	assert.Equal(t, HasMTE(), HasMTE())
}

func TestReadHwCap2(t *testing.T) {
	assert.Equal(t, readHwCap2()&HWCAP2_MTE != 0, HasMTE())
}

func TestSetWithoutMTE(t *testing.T) {
	if HasMTE() {
		t.Skip("would change the fault mode of the test process")
	}

	// Kernels without MTE reject the TCF and tag bits on every path,
	// including the per-thread fallback taken by cgo binaries.
	err := Set(Control{TCF: PR_MTE_TCF_SYNC, Included: 0xffff})
	require.Error(t, err)
}
