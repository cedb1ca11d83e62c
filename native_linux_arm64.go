//go:build linux && arm64 && !noasm

package memtag

import (
	"unsafe"

	"github.com/hupe1980/memtag/internal/arm64mte"
	"github.com/hupe1980/memtag/internal/prctl"
)

// DCZID_EL0 fields.
const (
	dczidBSMask = 0xf
	dczidDZP    = 1 << 4
)

func nativeSupported() bool {
	return prctl.HasMTE()
}

// Native returns an Engine driving the CPU's tagging instructions and a
// Controller backed by prctl(PR_SET_TAGGED_ADDR_CTRL). It fails with
// ErrUnsupported when Supported reports false. Regions passed to the engine
// must lie in PROT_MTE mappings. In cgo binaries mode changes reach only the
// calling thread; see Controller.
func Native(optFns ...Option) (*Engine, error) {
	if !Supported() {
		return nil, ErrUnsupported
	}
	ctl, err := NewController(nativePlatform{}, optFns...)
	if err != nil {
		return nil, err
	}
	return New(nativeHardware{}, ctl, optFns...), nil
}

type nativeHardware struct{}

func (nativeHardware) StoreTag(p uintptr)                    { arm64mte.STG(p) }
func (nativeHardware) StoreTagPair(p uintptr)                { arm64mte.ST2G(p) }
func (nativeHardware) StoreZeroTag(p uintptr)                { arm64mte.STZG(p) }
func (nativeHardware) StoreZeroTagPair(p uintptr)            { arm64mte.STZ2G(p) }
func (nativeHardware) StoreTagData(p uintptr, lo, hi uint64) { arm64mte.STGP(p, lo, hi) }
func (nativeHardware) LoadTag(p uintptr) uintptr             { return arm64mte.LDG(p) }
func (nativeHardware) ZeroBlock(p uintptr)                   { arm64mte.DCGZVA(p) }
func (nativeHardware) NextTag(p uintptr) uintptr             { return arm64mte.ADDG(p) }
func (nativeHardware) RandomTag(p uintptr) uintptr           { return arm64mte.IRG(p) }

func (nativeHardware) ZeroBlockSize() int {
	v := arm64mte.DCZID()
	if v&dczidDZP != 0 {
		return 0
	}
	// BS is log2 of the block size in 4-byte words.
	return 4 << (v & dczidBSMask)
}

func (nativeHardware) Zero(p uintptr, n int) {
	if n == 0 {
		return
	}
	clear(taggedBytes(p, n))
}

func (nativeHardware) Copy(dst, src uintptr, n int) {
	if n == 0 {
		return
	}
	copy(taggedBytes(dst, n), taggedBytes(src, n))
}

// taggedBytes views n bytes at the tagged address p. The top byte is ignored
// by address translation, so accesses through the slice are tag checked
// against the tag in p.
func taggedBytes(p uintptr, n int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), n) //nolint:gosec,govet // p addresses memory outside the Go heap
}

type nativePlatform struct{}

func (nativePlatform) SetTagControl(mode Mode, included TagMask) error {
	return prctl.Set(prctl.Control{TCF: tcfOf(mode), Included: uint16(included)})
}

func (nativePlatform) TagControl() (Mode, TagMask, error) {
	c, err := prctl.Get()
	if err != nil {
		return ModeNone, 0, err
	}
	return modeOf(c.TCF), TagMask(c.Included), nil
}

func tcfOf(mode Mode) uint {
	switch mode {
	case ModeSync:
		return prctl.PR_MTE_TCF_SYNC
	case ModeAsync:
		return prctl.PR_MTE_TCF_ASYNC
	default:
		return prctl.PR_MTE_TCF_NONE
	}
}

// modeOf maps a TCF preference set to a Mode. When the kernel reports more
// than one preferred mode the precise one wins.
func modeOf(tcf uint) Mode {
	switch {
	case tcf&prctl.PR_MTE_TCF_SYNC != 0:
		return ModeSync
	case tcf&prctl.PR_MTE_TCF_ASYNC != 0:
		return ModeAsync
	default:
		return ModeNone
	}
}
