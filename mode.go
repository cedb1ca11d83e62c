package memtag

import "strings"

// Mode is the process-wide reaction to a tag check fault.
type Mode uint8

const (
	// ModeNone ignores tag mismatches.
	ModeNone Mode = iota
	// ModeSync raises a precise fault at the mismatching access.
	ModeSync
	// ModeAsync records the mismatch and reports it later.
	ModeAsync
)

// String returns the string representation of a Mode.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeSync:
		return "sync"
	case ModeAsync:
		return "async"
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m <= ModeAsync
}

// ParseMode parses a string into a Mode value.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "off":
		return ModeNone, true
	case "sync":
		return ModeSync, true
	case "async":
		return ModeAsync, true
	default:
		return ModeNone, false
	}
}
