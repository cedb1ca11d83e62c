//go:build linux && arm64

package mmap

import (
	"github.com/hupe1980/memtag/internal/prctl"
)

// protMTE is PROT_MTE from arch/arm64/include/uapi/asm/mman.h.
const protMTE = 0x20

// MapTagged maps size bytes with PROT_MTE. Every granule starts with tag 0.
func MapTagged(size int) (*Mapping, error) {
	if !prctl.HasMTE() {
		return nil, ErrTaggingUnsupported
	}
	return mapAnon(size, protMTE)
}
