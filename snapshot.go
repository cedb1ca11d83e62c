package memtag

import (
	"context"
	"fmt"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/memtag/internal/conv"
)

// snapshotCheckEvery is how many granules a snapshot worker reads between
// context checks.
const snapshotCheckEvery = 4096

// Snapshot is the tag state of a region at one point in time, stored as one
// granule-index bitmap per tag value. Every granule index below Len is in
// exactly one bitmap.
type Snapshot struct {
	granules int
	byTag    [NumTags]*roaring.Bitmap
}

func newSnapshot(granules int) *Snapshot {
	s := &Snapshot{granules: granules}
	for i := range s.byTag {
		s.byTag[i] = roaring.New()
	}
	return s
}

// Snapshot reads the tag of every granule of r. len(r) must be a multiple of
// GranuleSize.
func (e *Engine) Snapshot(r Region) *Snapshot {
	e.requireIndexable(r)

	s := newSnapshot(r.Granules())
	i := uint32(0)
	for c := newCursor(r); c.valid(); c.advance(GranuleSize) {
		s.byTag[TagOf(e.hw.LoadTag(c.addr()))].Add(i)
		i++
	}
	s.optimize()
	return s
}

// SnapshotParallel is Snapshot with the reads split across up to workers
// goroutines. It only loads tags, so it is safe to run alongside other
// readers, but not alongside writers to the same region.
func (e *Engine) SnapshotParallel(ctx context.Context, r Region, workers int) (*Snapshot, error) {
	e.requireIndexable(r)
	if workers < 1 {
		workers = 1
	}

	n := r.Granules()
	s := newSnapshot(n)
	chunk := (n + workers - 1) / workers

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			local := newSnapshot(0)
			sub := r.Sub(lo*GranuleSize, (hi-lo)*GranuleSize)
			i := uint32(lo)
			for c := newCursor(sub); c.valid(); c.advance(GranuleSize) {
				if (i-uint32(lo))%snapshotCheckEvery == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				local.byTag[TagOf(e.hw.LoadTag(c.addr()))].Add(i)
				i++
			}

			mu.Lock()
			defer mu.Unlock()
			for t := range s.byTag {
				s.byTag[t].Or(local.byTag[t])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	s.optimize()
	return s, nil
}

// requireIndexable is require for snapshots, which additionally need every
// granule index to fit a bitmap entry.
func (e *Engine) requireIndexable(r Region) {
	e.require(OpLoadTags, r, GranuleSize)
	if _, err := conv.IntToUint32(r.Granules()); err != nil {
		e.abort(fmt.Errorf("memtag: snapshot of %d bytes: %w", r.Len(), err))
	}
}

func (s *Snapshot) optimize() {
	for _, b := range s.byTag {
		b.RunOptimize()
	}
}

// Len returns the number of granules covered.
func (s *Snapshot) Len() int {
	return s.granules
}

// TagAt returns the tag of granule i. It panics if i is out of range.
func (s *Snapshot) TagAt(i int) Tag {
	if i < 0 || i >= s.granules {
		panic("memtag: snapshot index out of range")
	}
	for t, b := range s.byTag {
		if b.Contains(uint32(i)) {
			return Tag(t)
		}
	}
	panic("memtag: snapshot granule without tag")
}

// Tags returns the tag of every granule in order.
func (s *Snapshot) Tags() []Tag {
	tags := make([]Tag, s.granules)
	for t, b := range s.byTag {
		it := b.Iterator()
		for it.HasNext() {
			tags[it.Next()] = Tag(t)
		}
	}
	return tags
}

// Count returns how many granules carry tag t.
func (s *Snapshot) Count(t Tag) int {
	return int(s.byTag[t.Masked()].GetCardinality())
}

// Granules returns the indices of the granules carrying tag t in ascending
// order.
func (s *Snapshot) Granules(t Tag) []uint32 {
	return s.byTag[t.Masked()].ToArray()
}

// Uniform reports whether every granule carries the same tag, and which.
// An empty snapshot is not uniform.
func (s *Snapshot) Uniform() (Tag, bool) {
	if s.granules == 0 {
		return 0, false
	}
	for t, b := range s.byTag {
		if int(b.GetCardinality()) == s.granules {
			return Tag(t), true
		}
	}
	return 0, false
}

// Equal reports whether s and o cover the same number of granules with the
// same tags.
func (s *Snapshot) Equal(o *Snapshot) bool {
	if s.granules != o.granules {
		return false
	}
	for t := range s.byTag {
		if !s.byTag[t].Equals(o.byTag[t]) {
			return false
		}
	}
	return true
}

// Diff returns the indices of granules whose tag differs between s and o,
// including granules present in only one of them.
func (s *Snapshot) Diff(o *Snapshot) []uint32 {
	xors := make([]*roaring.Bitmap, 0, NumTags)
	for t := range s.byTag {
		xors = append(xors, roaring.Xor(s.byTag[t], o.byTag[t]))
	}
	return roaring.FastOr(xors...).ToArray()
}
