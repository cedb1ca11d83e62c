package emulator

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"unsafe"

	"github.com/hupe1980/memtag"
	"github.com/hupe1980/memtag/internal/mem"
	"github.com/hupe1980/memtag/internal/tagptr"
)

const granule = memtag.GranuleSize

// ErrControlUnavailable is returned by the platform side of a Machine built
// with Unsupported.
var ErrControlUnavailable = errors.New("emulator: tag control unavailable")

// Stats counts the instructions a Machine has executed.
type Stats struct {
	STG    int64
	ST2G   int64
	STZG   int64
	STZ2G  int64
	STGP   int64
	LDG    int64
	DCGZVA int64
	ADDG   int64
	IRG    int64
}

type counters struct {
	stg, st2g, stzg, stz2g, stgp, ldg, dcgzva, addg, irg atomic.Int64
}

// Machine is a software MTE implementation. The zero value is not usable;
// call New.
type Machine struct {
	tags      map[uintptr]uint8
	blockSize int
	rng       *rand.Rand

	mode     memtag.Mode
	included memtag.TagMask

	controlErr error
	asyncFault *TagCheckFault

	counts counters
}

var (
	_ memtag.Hardware = (*Machine)(nil)
	_ memtag.Platform = (*Machine)(nil)
)

// New returns a Machine with an empty shadow tag table.
func New(optFns ...Option) *Machine {
	o := options{blockSize: 64, seed: 1}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.blockSize != 0 && (o.blockSize < granule || o.blockSize&(o.blockSize-1) != 0) {
		panic(fmt.Sprintf("emulator: invalid zero block size %d", o.blockSize))
	}

	return &Machine{
		tags:      make(map[uintptr]uint8),
		blockSize: o.blockSize,
		rng:       rand.New(rand.NewPCG(o.seed, o.seed^0x9e3779b97f4a7c15)),
		mode:      o.mode,
		included:  o.included,
	}
}

// Unsupported returns a Machine whose platform side fails every call, like a
// kernel without tagged address control.
func Unsupported(optFns ...Option) *Machine {
	m := New(optFns...)
	m.controlErr = ErrControlUnavailable
	return m
}

// Alloc returns a zeroed buffer of size bytes aligned to the zero block size
// (at least 64 bytes) with every granule tag reset to 0.
func (m *Machine) Alloc(size int) []byte {
	buf := mem.AllocAlignedTo(size, max(m.blockSize, mem.Alignment))
	if buf == nil {
		return nil
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(buf))) //nolint:gosec // address only
	for g := base; g < base+uintptr(size); g += granule {
		delete(m.tags, g)
	}
	return buf
}

// FailControl makes every later SetTagControl call return err. Passing nil
// restores normal behavior.
func (m *Machine) FailControl(err error) {
	m.controlErr = err
}

// TakeAsyncFault returns the fault recorded in ModeAsync, if any, and clears
// it.
func (m *Machine) TakeAsyncFault() *TagCheckFault {
	f := m.asyncFault
	m.asyncFault = nil
	return f
}

// Stats returns the instruction counts so far.
func (m *Machine) Stats() Stats {
	return Stats{
		STG:    m.counts.stg.Load(),
		ST2G:   m.counts.st2g.Load(),
		STZG:   m.counts.stzg.Load(),
		STZ2G:  m.counts.stz2g.Load(),
		STGP:   m.counts.stgp.Load(),
		LDG:    m.counts.ldg.Load(),
		DCGZVA: m.counts.dcgzva.Load(),
		ADDG:   m.counts.addg.Load(),
		IRG:    m.counts.irg.Load(),
	}
}

// StoreTag implements memtag.Hardware.
func (m *Machine) StoreTag(p uintptr) {
	m.counts.stg.Add(1)
	m.setTags(p, 1)
}

// StoreTagPair implements memtag.Hardware.
func (m *Machine) StoreTagPair(p uintptr) {
	m.counts.st2g.Add(1)
	m.setTags(p, 2)
}

// StoreZeroTag implements memtag.Hardware.
func (m *Machine) StoreZeroTag(p uintptr) {
	m.counts.stzg.Add(1)
	addr := m.setTags(p, 1)
	clear(bytesAt(addr, granule))
}

// StoreZeroTagPair implements memtag.Hardware.
func (m *Machine) StoreZeroTagPair(p uintptr) {
	m.counts.stz2g.Add(1)
	addr := m.setTags(p, 2)
	clear(bytesAt(addr, 2*granule))
}

// StoreTagData implements memtag.Hardware.
func (m *Machine) StoreTagData(p uintptr, lo, hi uint64) {
	m.counts.stgp.Add(1)
	addr := m.setTags(p, 1)
	b := bytesAt(addr, granule)
	binary.LittleEndian.PutUint64(b[:8], lo)
	binary.LittleEndian.PutUint64(b[8:], hi)
}

// LoadTag implements memtag.Hardware.
func (m *Machine) LoadTag(p uintptr) uintptr {
	m.counts.ldg.Add(1)
	addr := tagptr.Strip(p)
	return tagptr.Encode(addr, m.tags[tagptr.AlignDown(addr, granule)])
}

// ZeroBlock implements memtag.Hardware.
func (m *Machine) ZeroBlock(p uintptr) {
	if m.blockSize == 0 {
		panic("emulator: DC GZVA with block zeroing prohibited")
	}
	m.counts.dcgzva.Add(1)
	addr, tag := tagptr.Decode(p)
	block := tagptr.AlignDown(addr, uintptr(m.blockSize))
	for g := block; g < block+uintptr(m.blockSize); g += granule {
		m.tags[g] = tag
	}
	clear(bytesAt(block, m.blockSize))
}

// ZeroBlockSize implements memtag.Hardware.
func (m *Machine) ZeroBlockSize() int {
	return m.blockSize
}

// NextTag implements memtag.Hardware.
func (m *Machine) NextTag(p uintptr) uintptr {
	m.counts.addg.Add(1)
	return tagptr.Encode(p, tagptr.ChooseIncluded(tagptr.Tag(p), 1, uint16(m.included)))
}

// RandomTag implements memtag.Hardware.
func (m *Machine) RandomTag(p uintptr) uintptr {
	m.counts.irg.Add(1)
	r := uint8(m.rng.IntN(memtag.NumTags))
	return tagptr.Encode(p, tagptr.ChooseIncluded(r, 0, uint16(m.included)))
}

// Zero implements memtag.Hardware.
func (m *Machine) Zero(p uintptr, n int) {
	if n == 0 {
		return
	}
	m.check(p, n, true)
	clear(bytesAt(tagptr.Strip(p), n))
}

// Copy implements memtag.Hardware.
func (m *Machine) Copy(dst, src uintptr, n int) {
	if n == 0 {
		return
	}
	m.check(src, n, false)
	m.check(dst, n, true)
	copy(bytesAt(tagptr.Strip(dst), n), bytesAt(tagptr.Strip(src), n))
}

// Read copies len(buf) bytes at p into buf with the same tag check a load
// through p would perform.
func (m *Machine) Read(p uintptr, buf []byte) {
	if len(buf) == 0 {
		return
	}
	m.check(p, len(buf), false)
	copy(buf, bytesAt(tagptr.Strip(p), len(buf)))
}

// SetTagControl implements memtag.Platform.
func (m *Machine) SetTagControl(mode memtag.Mode, included memtag.TagMask) error {
	if m.controlErr != nil {
		return m.controlErr
	}
	if !mode.Valid() {
		return fmt.Errorf("emulator: invalid mode %d", mode)
	}
	m.mode, m.included = mode, included
	return nil
}

// TagControl implements memtag.Platform.
func (m *Machine) TagControl() (memtag.Mode, memtag.TagMask, error) {
	if errors.Is(m.controlErr, ErrControlUnavailable) {
		return memtag.ModeNone, 0, m.controlErr
	}
	return m.mode, m.included, nil
}

// TagAt returns the shadow tag of the granule containing addr.
func (m *Machine) TagAt(addr uintptr) uint8 {
	return m.tags[tagptr.AlignDown(tagptr.Strip(addr), granule)]
}

// setTags writes the tag of p to count granules starting at p and returns
// the untagged address.
func (m *Machine) setTags(p uintptr, count int) uintptr {
	addr, tag := tagptr.Decode(p)
	if addr%granule != 0 {
		panic(&AlignmentFault{Addr: p, Align: granule})
	}
	for i := 0; i < count; i++ {
		m.tags[addr+uintptr(i*granule)] = tag
	}
	return addr
}

// check compares the tag of p against every granule in [p, p+n).
func (m *Machine) check(p uintptr, n int, write bool) {
	if m.mode == memtag.ModeNone {
		return
	}
	addr, ptag := tagptr.Decode(p)
	end := addr + uintptr(n)
	for g := tagptr.AlignDown(addr, granule); g < end; g += granule {
		mtag := m.tags[g]
		if mtag == ptag {
			continue
		}
		f := &TagCheckFault{
			Addr:       tagptr.Encode(max(g, addr), ptag),
			PointerTag: ptag,
			MemoryTag:  mtag,
			Write:      write,
		}
		if m.mode == memtag.ModeSync {
			panic(f)
		}
		if m.asyncFault == nil {
			m.asyncFault = f
		}
		return
	}
}

// bytesAt views n bytes of ordinary memory at addr.
func bytesAt(addr uintptr, n int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), n) //nolint:gosec,govet // addr comes from a live Go buffer
}
