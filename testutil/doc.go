// Package testutil provides testing utilities for memtag.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, goroutine-safe random source for region sizes, fill
// patterns, and tags, plus helpers for building emulated engines.
//
// # Random Regions
//
//	rng := testutil.NewRNG(seed)
//	n := rng.Length(64, memtag.GranuleSize) // 16..1024 bytes in 16-byte steps
//	rng.Fill(buf)                           // random, nonzero-heavy content
//
// # Emulated Engines
//
//	m, e := testutil.NewEngine(t, emulator.WithBlockSize(64))
package testutil
