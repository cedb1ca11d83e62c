// Package mmap provides anonymous memory mappings outside the Go heap.
//
// # Overview
//
// Memory tags only exist on pages mapped with PROT_MTE, which the Go runtime
// never requests for its own heap. Tagged buffers therefore have to come from
// mmap(2) directly.
//
// # Usage
//
//	m, err := mmap.MapTagged(64 << 10) // linux/arm64 only
//	if err != nil { ... }
//	defer m.Close()
//
//	buf := m.Bytes()
//
//	// A granule-aligned window with a paging hint
//	v, _ := m.View(4096, 8192)
//	_ = v.Advise(mmap.AccessSequential)
//
// # Thread Safety
//
// Mapping and View are safe for concurrent read access. The Close() method
// is idempotent and protected by atomic operations. However, callers must
// ensure no goroutines access Bytes() after Close() returns.
package mmap
