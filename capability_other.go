//go:build !(linux && arm64) || noasm

package memtag

func nativeSupported() bool {
	return false
}
