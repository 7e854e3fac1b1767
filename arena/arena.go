// SPDX-License-Identifier: MIT

// Package arena - bump allocator core.
//
// Purpose:
//   - Hand out aligned, non-overlapping regions of a caller-owned buffer.
//   - Reclaim memory only by rewinding the position (Restore, Reset, Shrink).
//   - Remember every rewind compactly so Live can tell whether a region was
//     reclaimed after it was issued.
//
// Rewind log:
//   - Each rewind bumps gen and records (gen, pos).
//   - Entries are kept as a monotonic stack: pushing pos p first pops every
//     entry with pos >= p. The stack is therefore increasing in both gen and pos.
//   - For a region issued at generation g, the lowest position reached by any
//     later rewind is the pos of the first entry with gen > g. A region is live
//     iff that position is still >= its end.

package arena

import (
	"fmt"
	"sort"
	"unsafe"
)

// float32Size is the byte width of one float32 element.
const float32Size = 4

// Arena is a fixed-capacity linear allocator.
//   - buf is the aligned window over the caller's memory; capacity == len(buf).
//   - pos is the first unused byte (0 <= pos <= capacity).
//   - gen counts rewinds; regions and marks remember the gen they were issued at.
//
// Not thread-safe without external locking.
type Arena struct {
	buf     []byte   // aligned window over caller memory
	pos     int      // current position in bytes
	peak    int      // highest position ever reached
	align   int      // region offset alignment (power of two)
	gen     uint64   // rewind generation
	rewinds []rewind // monotonic stack, see file header
}

// rewind records that the position dropped to pos at generation gen.
type rewind struct {
	gen uint64
	pos int
}

// Region is the handle returned by Alloc. Only an Arena can issue one.
type Region struct {
	owner *Arena
	off   int
	size  int
	gen   uint64
}

// Offset returns the aligned start of the region relative to the arena base.
func (r Region) Offset() int { return r.off }

// Size returns the region length in bytes.
func (r Region) Size() int { return r.size }

// End returns Offset()+Size().
func (r Region) End() int { return r.off + r.size }

// Mark is a checkpoint of the arena position, taken with Arena.Mark.
type Mark struct {
	owner *Arena
	pos   int
	gen   uint64
}

// Pos returns the position the mark was taken at.
func (m Mark) Pos() int { return m.pos }

// New wraps caller-owned memory in an Arena.
// Leading bytes are skipped when the base address is not aligned, so that
// every aligned offset is also an aligned address.
//
// Errors:
//   - ErrNilMemory when mem is empty or the alignment padding leaves nothing.
//
// Complexity: O(1); mem is neither copied nor zeroed.
func New(mem []byte, opts ...Option) (*Arena, error) {
	if len(mem) == 0 {
		return nil, ErrNilMemory
	}
	o := gatherOptions(opts...)

	base := uintptr(unsafe.Pointer(&mem[0]))
	pad := int(alignUp(base, uintptr(o.alignment)) - base)
	if pad >= len(mem) {
		return nil, fmt.Errorf("New: %d bytes, %d padding: %w", len(mem), pad, ErrNilMemory)
	}

	return &Arena{
		buf:   mem[pad:len(mem):len(mem)],
		align: o.alignment,
	}, nil
}

// Alloc reserves size bytes at the next aligned offset.
// Implementation:
//   - Stage 1: round pos up to the alignment boundary.
//   - Stage 2: fail if the aligned position is past capacity or size does not fit.
//   - Stage 3: advance pos to aligned+size and return the region.
//
// A zero size is legal and returns an empty region at the aligned offset.
//
// Errors:
//   - ErrInvalidSize for negative size.
//   - ErrExhausted when the request does not fit; the arena is left unchanged.
//
// Complexity: O(1).
func (a *Arena) Alloc(size int) (Region, error) {
	if size < 0 {
		return Region{}, fmt.Errorf("Alloc(%d): %w", size, ErrInvalidSize)
	}
	capacity := len(a.buf)
	aligned := int(alignUp(uintptr(a.pos), uintptr(a.align)))
	if aligned > capacity || size > capacity-aligned {
		return Region{}, fmt.Errorf("Alloc(%d): free %d: %w", size, a.FreeBytes(), ErrExhausted)
	}

	a.pos = aligned + size
	if a.pos > a.peak {
		a.peak = a.pos
	}

	return Region{owner: a, off: aligned, size: size, gen: a.gen}, nil
}

// Shrink decreases the position by size bytes, clamping at zero.
// It is a raw decrement: it does not check that the bytes released belong to
// the most recent allocation. Prefer Mark/Restore. Negative sizes are ignored.
// Regions above the new position stop being Live.
func (a *Arena) Shrink(size int) {
	if size <= 0 {
		return
	}
	if size >= a.pos {
		a.rewindTo(0)
		return
	}
	a.rewindTo(a.pos - size)
}

// Mark captures the current position for a later Restore.
func (a *Arena) Mark() Mark {
	return Mark{owner: a, pos: a.pos, gen: a.gen}
}

// Restore rewinds the arena to m.
// Marks must be restored in stack order: once the position has been rewound
// below a mark, or the mark is ahead of the current position, it is stale.
//
// Errors:
//   - ErrForeignRegion when m was taken on another arena.
//   - ErrStaleMark as described above.
func (a *Arena) Restore(m Mark) error {
	if m.owner != a {
		return fmt.Errorf("Restore: %w", ErrForeignRegion)
	}
	if m.pos > a.pos || a.lowestSince(m.gen) < m.pos {
		return fmt.Errorf("Restore(%d): pos %d: %w", m.pos, a.pos, ErrStaleMark)
	}
	a.rewindTo(m.pos)

	return nil
}

// Reset rewinds the arena to zero. Every region issued so far stops being Live.
func (a *Arena) Reset() { a.rewindTo(0) }

// Live reports whether r was issued by this arena and none of its bytes has
// been rewound over since.
func (a *Arena) Live(r Region) bool {
	if r.owner != a {
		return false
	}

	return a.lowestSince(r.gen) >= r.End()
}

// Float32s returns r as a []float32 view into the arena memory.
// The view aliases the arena: it must not be used once r stops being Live.
//
// Errors:
//   - ErrForeignRegion when r is not a live region of this arena.
//   - ErrInvalidSize when r.Size() is not a multiple of 4.
func (a *Arena) Float32s(r Region) ([]float32, error) {
	if !a.Live(r) {
		return nil, fmt.Errorf("Float32s: %w", ErrForeignRegion)
	}
	if r.size%float32Size != 0 {
		return nil, fmt.Errorf("Float32s: size %d: %w", r.size, ErrInvalidSize)
	}
	if r.size == 0 {
		return nil, nil
	}
	n := r.size / float32Size

	return unsafe.Slice((*float32)(unsafe.Pointer(&a.buf[r.off])), n), nil
}

// Capacity returns the usable size in bytes.
func (a *Arena) Capacity() int { return len(a.buf) }

// Used returns the current position in bytes.
func (a *Arena) Used() int { return a.pos }

// Peak returns the highest position the arena ever reached.
// Handy for sizing the backing buffer on a constrained target.
func (a *Arena) Peak() int { return a.peak }

// FreeBytes returns Capacity() - Used().
func (a *Arena) FreeBytes() int { return len(a.buf) - a.pos }

// Alignment returns the region offset alignment in bytes.
func (a *Arena) Alignment() int { return a.align }

// String summarises the arena state for diagnostics.
func (a *Arena) String() string {
	return fmt.Sprintf("arena{used=%d free=%d cap=%d peak=%d align=%d}",
		a.pos, a.FreeBytes(), len(a.buf), a.peak, a.align)
}

// rewindTo moves pos down to p and records the rewind.
func (a *Arena) rewindTo(p int) {
	if p >= a.pos {
		return // nothing reclaimed
	}
	a.gen++
	n := len(a.rewinds)
	for n > 0 && a.rewinds[n-1].pos >= p {
		n--
	}
	a.rewinds = append(a.rewinds[:n], rewind{gen: a.gen, pos: p})
	a.pos = p
}

// lowestSince returns the lowest position reached by a rewind after gen g,
// or Capacity() when there was none.
func (a *Arena) lowestSince(g uint64) int {
	i := sort.Search(len(a.rewinds), func(i int) bool { return a.rewinds[i].gen > g })
	if i == len(a.rewinds) {
		return len(a.buf)
	}

	return a.rewinds[i].pos
}
