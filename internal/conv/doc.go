// Package conv provides safe integer type conversion utilities.
//
// Snapshots index granules with uint32; conversions from region-derived int
// counts go through here so an oversized region is reported instead of
// silently wrapping.
package conv
