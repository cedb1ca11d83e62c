// Package emulator implements memtag.Hardware and memtag.Platform in
// software.
//
// # Overview
//
// A Machine keeps a shadow tag for every granule it has seen, keyed by the
// granule's untagged address, next to the real memory the granule lives in.
// Data operations go to that real memory; tag operations go to the shadow
// table. Granules that were never tagged report tag 0, which matches a fresh
// PROT_MTE mapping.
//
// # Tag Checks
//
// Data accesses made through Zero, Copy and Read are checked like the hardware
// checks loads and stores: the tag in the pointer must equal the shadow tag
// of every granule touched.
//
//   - ModeNone: no checks.
//   - ModeSync: a mismatch panics with *TagCheckFault before any byte of the
//     access is written.
//   - ModeAsync: the first mismatch is recorded, the access proceeds, and the
//     fault is reported by TakeAsyncFault.
//
// Tag instructions themselves are never checked, as on hardware.
//
// # Memory
//
// The emulator addresses ordinary Go memory. Buffers must not move or be
// freed while a Machine refers to them; Alloc returns suitably aligned
// buffers and resets their shadow tags.
//
// # Thread Safety
//
// LoadTag may be called concurrently with itself. Everything else assumes a
// single caller, mirroring the primitive layer it stands in for.
package emulator
