// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Overwriting fixed-capacity ring buffer over a wrapped slice.
// Cell validity is derived purely from start/count; no per-cell flags.

package ring

import (
	"github.com/momentics/circbuf/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Buffer[any])(nil)

// Buffer is a fixed-capacity FIFO that overwrites the oldest element
// when pushed while full.
//
// The live elements occupy cells (start+i) % cap for i in [0, count);
// every other cell is zeroed and never read. Both invariants hold
// between any two method calls.
type Buffer[T any] struct {
	// start is the physical index of the oldest live element.
	start int
	// count is the number of live elements, in [0, cap].
	count int
	cells []T
}

// New allocates an empty buffer with the given fixed capacity.
// Negative capacity panics. Zero capacity yields a degenerate but valid
// buffer that is empty and full at once and drops every Push.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 0 {
		panic(api.NewError(api.ErrCodeInvalidArgument, "ring: negative capacity").
			WithContext("capacity", capacity))
	}
	return &Buffer[T]{cells: make([]T, capacity)}
}

// Push stores v. While the buffer is under capacity the element count
// grows; once full, the cell one past the newest is the oldest's cell,
// so writing it evicts the oldest and start advances past it.
func (b *Buffer[T]) Push(v T) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[(b.start+b.count)%len(b.cells)] = v
	if b.count == len(b.cells) {
		b.start = (b.start + 1) % len(b.cells)
		return
	}
	b.count++
}

// Pop removes and returns the oldest element; ok is false on an empty
// buffer, which is left untouched. The vacated cell is zeroed so the
// buffer does not keep the returned element alive.
func (b *Buffer[T]) Pop() (v T, ok bool) {
	if b.count == 0 {
		return v, false
	}
	v = b.cells[b.start]
	var zero T
	b.cells[b.start] = zero
	b.start = (b.start + 1) % len(b.cells)
	b.count--
	return v, true
}

// Peek returns the oldest element without removing it.
func (b *Buffer[T]) Peek() (v T, ok bool) {
	if b.count == 0 {
		return v, false
	}
	return b.cells[b.start], true
}

// Len returns the number of live elements.
func (b *Buffer[T]) Len() int {
	return b.count
}

// Cap returns the fixed capacity.
func (b *Buffer[T]) Cap() int {
	return len(b.cells)
}

// IsEmpty reports whether the buffer holds no elements.
func (b *Buffer[T]) IsEmpty() bool {
	return b.count == 0
}

// IsFull reports whether the next Push would evict the oldest element.
func (b *Buffer[T]) IsFull() bool {
	return b.count == len(b.cells)
}

// At returns the i-th oldest element, 0-indexed from the oldest.
// i outside [0, Len()) is a usage violation and panics with a
// *api.Error carrying ErrCodeOutOfRange.
func (b *Buffer[T]) At(i int) T {
	return *b.index(i)
}

// Ptr returns a mutable pointer to the i-th oldest element, with the
// same range contract as At. Writing through it replaces that logical
// position's value in place; start and count are unaffected. The
// pointer stays valid only until the next Push, Pop or Reset on the
// same buffer.
func (b *Buffer[T]) Ptr(i int) *T {
	return b.index(i)
}

func (b *Buffer[T]) index(i int) *T {
	if i < 0 || i >= b.count {
		panic(api.NewError(api.ErrCodeOutOfRange, "ring: index out of range").
			WithContext("index", i).
			WithContext("len", b.count))
	}
	return &b.cells[(b.start+i)%len(b.cells)]
}

// Slice copies the live elements into a new slice, oldest first.
// Returns nil for an empty buffer.
func (b *Buffer[T]) Slice() []T {
	if b.count == 0 {
		return nil
	}
	out := make([]T, b.count)
	first := b.cells[b.start:]
	if len(first) > b.count {
		first = first[:b.count]
	}
	n := copy(out, first)
	copy(out[n:], b.cells[:b.count-n])
	return out
}

// Reset drops all live elements and zeroes their cells, returning the
// buffer to its initial empty state.
func (b *Buffer[T]) Reset() {
	var zero T
	for i := 0; i < b.count; i++ {
		b.cells[(b.start+i)%len(b.cells)] = zero
	}
	b.start = 0
	b.count = 0
}
