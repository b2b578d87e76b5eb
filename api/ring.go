// Package api
// Author: momentics <momentics@gmail.com>
//
// Contract for fixed-capacity overwriting ring buffers.

package api

// Ring is the overwriting FIFO contract. A Ring holds at most Cap()
// items; pushing into a full ring evicts the oldest item instead of
// failing or growing.
type Ring[T any] interface {
	// Push stores an item, evicting the oldest one when full.
	Push(item T)
	// Pop removes and returns the oldest item; ok is false when empty.
	Pop() (item T, ok bool)
	// Peek returns the oldest item without removing it.
	Peek() (item T, ok bool)
	// At returns the i-th oldest item, 0-indexed from the oldest.
	// i outside [0, Len()) panics with ErrCodeOutOfRange.
	At(i int) T
	// Len returns current number of items.
	Len() int
	// Cap returns fixed buffer capacity.
	Cap() int
	// IsEmpty reports whether the ring holds no items.
	IsEmpty() bool
	// IsFull reports whether the next Push would evict.
	IsFull() bool
	// Reset drops all items.
	Reset()
}
