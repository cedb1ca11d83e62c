//go:build linux

package prctl

import (
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

// See include/uapi/linux/prctl.h.
const (
	PR_SET_TAGGED_ADDR_CTRL = 55
	PR_GET_TAGGED_ADDR_CTRL = 56
	PR_TAGGED_ADDR_ENABLE   = 1 << 0

	PR_MTE_TCF_NONE  = 0
	PR_MTE_TCF_SYNC  = 1 << 1
	PR_MTE_TCF_ASYNC = 1 << 2
	PR_MTE_TCF_MASK  = PR_MTE_TCF_SYNC | PR_MTE_TCF_ASYNC

	PR_MTE_TAG_SHIFT = 3
	PR_MTE_TAG_MASK  = 0xffff << PR_MTE_TAG_SHIFT
)

// See arch/arm64/include/uapi/asm/hwcap.h.
const (
	_AT_HWCAP2 = 26
	HWCAP2_MTE = 1 << 18
)

// Control is the decoded tagged-address control word.
type Control struct {
	// TCF is one of the PR_MTE_TCF_* values.
	TCF uint
	// Included is the set of tags IRG may generate.
	Included uint16
}

func (c Control) word() uintptr {
	return uintptr(PR_TAGGED_ADDR_ENABLE | c.TCF&PR_MTE_TCF_MASK | uint(c.Included)<<PR_MTE_TAG_SHIFT)
}

// Set installs c on every thread of the process. Binaries built with cgo
// cannot use the all-threads path; there only the calling thread is updated.
func Set(c Control) error {
	_, _, errno := syscall.AllThreadsSyscall6(unix.SYS_PRCTL, PR_SET_TAGGED_ADDR_CTRL, c.word(), 0, 0, 0, 0)
	switch errno {
	case 0:
		return nil
	case unix.ENOTSUP:
		return unix.Prctl(PR_SET_TAGGED_ADDR_CTRL, c.word(), 0, 0, 0)
	default:
		return errno
	}
}

// Get returns the control word of the calling thread.
func Get() (Control, error) {
	v, err := unix.PrctlRetInt(PR_GET_TAGGED_ADDR_CTRL, 0, 0, 0, 0)
	if err != nil {
		return Control{}, err
	}
	return Control{
		TCF:      uint(v) & PR_MTE_TCF_MASK,
		Included: uint16((uint(v) & PR_MTE_TAG_MASK) >> PR_MTE_TAG_SHIFT),
	}, nil
}

var (
	hwcap2     uint64
	hwcap2Once sync.Once
)

// HasMTE reports whether the kernel advertises FEAT_MTE2 to user space.
func HasMTE() bool {
	hwcap2Once.Do(func() {
		hwcap2 = readHwCap2()
	})
	return hwcap2&HWCAP2_MTE != 0
}

// readHwCap2 looks up AT_HWCAP2 in the auxiliary vector the runtime
// captured at startup.
func readHwCap2() uint64 {
	auxv, err := unix.Auxv()
	if err != nil {
		return 0
	}
	for _, kv := range auxv {
		if kv[0] == _AT_HWCAP2 {
			return uint64(kv[1])
		}
	}
	return 0
}
