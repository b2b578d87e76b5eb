// File: ring/iter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lazy forward iteration over live elements, oldest to newest.

package ring

import "iter"

// Values returns an iterator over the live elements in FIFO order,
// equivalent to At(0), At(1), ... At(Len()-1). Each range over the
// result walks the buffer from the oldest element again. The buffer
// must not be mutated while a walk is in progress.
func (b *Buffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < b.count; i++ {
			if !yield(b.cells[(b.start+i)%len(b.cells)]) {
				return
			}
		}
	}
}

// All returns an iterator over logical index / element pairs in FIFO
// order, mirroring slices.All. Index 0 is the oldest element.
func (b *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < b.count; i++ {
			if !yield(i, b.cells[(b.start+i)%len(b.cells)]) {
				return
			}
		}
	}
}
