// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Tagging instructions address whole 16-byte granules and the bulk tagging path
// works on whole zero blocks, so buffers handed to the emulator start on a
// cache-line (or larger power-of-two) boundary.
package mem
