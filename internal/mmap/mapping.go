//go:build unix

package mmap

import (
	"sync/atomic"
)

// Mapping is an anonymous private mapping. It owns the pages and unmaps them
// on Close.
type Mapping struct {
	data   []byte
	size   int
	tagged bool
	closed atomic.Bool
	// unmap is the platform-specific function to unmap the memory.
	unmap func([]byte) error
}

// mapAnon maps size bytes of zero-filled read-write memory with extraProt
// added to the protection bits.
func mapAnon(size int, extraProt int) (*Mapping, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	data, unmapFunc, err := osMapAnon(size, extraProt)
	if err != nil {
		return nil, err
	}
	return &Mapping{
		data:   data,
		size:   size,
		tagged: extraProt != 0,
		unmap:  unmapFunc,
	}, nil
}

// Close unmaps the memory. It is idempotent.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return nil // Already closed
	}
	if m.unmap != nil && m.data != nil {
		return m.unmap(m.data)
	}
	return nil
}

// Bytes returns the underlying byte slice.
// Warning: The slice is valid only until Close() is called.
// Accessing the slice after Close() results in undefined behavior (likely a crash).
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// Size returns the size of the mapping in bytes.
func (m *Mapping) Size() int {
	return m.size
}

// Tagged reports whether the pages were mapped with PROT_MTE.
func (m *Mapping) Tagged() bool {
	return m.tagged
}
