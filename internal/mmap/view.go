//go:build unix

package mmap

// granule is the MTE tag granule. Views never split one.
const granule = 16

// View is a granule-aligned window into a Mapping. The Mapping owns the
// memory; a View is only valid until the Mapping is closed.
type View struct {
	m   *Mapping
	off int
	n   int
}

// View returns the n bytes starting at off. Both must be multiples of 16 so
// the window covers whole tag granules.
func (m *Mapping) View(off, n int) (*View, error) {
	switch {
	case m.closed.Load():
		return nil, ErrClosed
	case off < 0 || n < 0 || off+n > m.size:
		return nil, ErrOutOfBounds
	case off%granule != 0 || n%granule != 0:
		return nil, ErrMisaligned
	}
	return &View{m: m, off: off, n: n}, nil
}

// Bytes returns the window, or nil once the Mapping is closed. Appending to
// the result never writes past the window.
func (v *View) Bytes() []byte {
	if v.m.closed.Load() {
		return nil
	}
	return v.m.data[v.off : v.off+v.n : v.off+v.n]
}

// Advise passes an access hint for the pages under the window to the kernel.
func (v *View) Advise(pattern AccessPattern) error {
	if v.m.closed.Load() {
		return ErrClosed
	}
	return osAdvise(v.m.data[v.off:v.off+v.n], pattern)
}
