// Package tagptr packs and unpacks MTE allocation tags in 64-bit pointers.
//
// # Layout
//
//	63      60 59   56 55      48 47                                0
//	+---------+-------+----------+-----------------------------------+
//	| unused  |  tag  |  unused  |          linear address           |
//	+---------+-------+----------+-----------------------------------+
//
// The hardware ignores the top byte during address translation (TBI), so a
// pointer carrying a tag still names the same granule. Everything in this
// package is a pure bit operation; callers are responsible for keeping the
// underlying memory alive.
package tagptr
