//go:build unix && !(linux && arm64)

package mmap

// MapTagged always fails: PROT_MTE only exists on linux/arm64.
func MapTagged(size int) (*Mapping, error) {
	return nil, ErrTaggingUnsupported
}
