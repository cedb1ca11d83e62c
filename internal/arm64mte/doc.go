// Package arm64mte exposes the A64 memory tagging instructions as Go functions.
//
// Each function is a thin assembly wrapper around a single instruction (or a
// single system register read). The instructions are emitted as raw WORD
// encodings so the package builds with assemblers that do not know the MTE
// mnemonics. Arguments named p are tagged pointers: the allocation tag is taken
// from, or written to, bits 56-59.
//
// Calling any of these on a CPU without FEAT_MTE2 raises SIGILL. Callers must
// check for HWCAP2_MTE first.
package arm64mte
