// Package ring
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity generic ring buffer with overwrite-on-full semantics.
// Buffer[T] keeps the last Cap() pushed items in FIFO order; a Push into
// a full buffer silently evicts the oldest item. All operations are O(1).
//
// The buffer is not internally synchronized. It is intended for use from
// a single goroutine; callers sharing one across goroutines must provide
// their own locking. See ring.go and iter.go for implementation details.
package ring
