// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Performance benchmarks for the circbuf ring buffer, with baseline
// comparisons against container/ring and eapache/queue.

package benchmarks

import (
	stdring "container/ring"
	"testing"

	"github.com/eapache/queue"

	"github.com/momentics/circbuf/ring"
)

// BenchmarkBufferPush measures steady-state overwrite throughput on a
// full buffer, the hot path of a keep-last-N workload.
func BenchmarkBufferPush(b *testing.B) {
	buf := ring.New[int](1024)
	for i := 0; i < 1024; i++ {
		buf.Push(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Push(i)
	}
}

// BenchmarkBufferPushPop measures a balanced FIFO cycle.
func BenchmarkBufferPushPop(b *testing.B) {
	buf := ring.New[int](1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Push(i)
		if buf.Len() > 512 {
			buf.Pop()
		}
	}
}

// BenchmarkBufferAt measures random access cost over a wrapped buffer.
func BenchmarkBufferAt(b *testing.B) {
	buf := ring.New[int](1024)
	for i := 0; i < 1536; i++ { // force a physical wrap
		buf.Push(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.At(i & 1023)
	}
}

// BenchmarkBufferValues measures a full lazy walk.
func BenchmarkBufferValues(b *testing.B) {
	buf := ring.New[int](1024)
	for i := 0; i < 1536; i++ {
		buf.Push(i)
	}
	b.ResetTimer()
	sum := 0
	for i := 0; i < b.N; i++ {
		for v := range buf.Values() {
			sum += v
		}
	}
	_ = sum
}

// BenchmarkBufferSlice measures the two-copy snapshot path.
func BenchmarkBufferSlice(b *testing.B) {
	buf := ring.New[int](1024)
	for i := 0; i < 1536; i++ {
		buf.Push(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.Slice()
	}
}

// BenchmarkEapacheQueuePushPop runs the same balanced cycle over
// eapache/queue, an unbounded interface-boxed FIFO, as a baseline.
func BenchmarkEapacheQueuePushPop(b *testing.B) {
	q := queue.New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Add(i)
		if q.Length() > 512 {
			q.Remove()
		}
	}
}

// BenchmarkEapacheQueueOverwrite emulates keep-last-N semantics on
// eapache/queue by removing the front before each add once full.
func BenchmarkEapacheQueueOverwrite(b *testing.B) {
	q := queue.New()
	for i := 0; i < 1024; i++ {
		q.Add(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Remove()
		q.Add(i)
	}
}

// BenchmarkContainerRingPush runs the overwrite hot path over the
// stdlib container/ring linked ring as a baseline.
func BenchmarkContainerRingPush(b *testing.B) {
	r := stdring.New(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Value = i
		r = r.Next()
	}
}
