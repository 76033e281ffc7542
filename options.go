// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mmheap

type options[T Ordered] struct {
	capacity int
	backing  []T
	values   []T
}

// Option represents the options that can be passed to New.
type Option[T Ordered] func(*options[T])

// WithCapacity sets the fixed capacity of the heap.
func WithCapacity[T Ordered](n int) Option[T] {
	return func(o *options[T]) {
		o.capacity = n
	}
}

// WithBacking supplies a caller-owned slice to use as the backing storage.
// The heap starts empty with capacity len(storage). The storage is never
// reallocated and hence its lifecycle remains with the caller.
func WithBacking[T Ordered](storage []T) Option[T] {
	return func(o *options[T]) {
		o.backing = storage
	}
}

// WithValues sets the initial contents of the heap, which are reordered
// in place into a heap in linear time. The slice is adopted as the backing
// storage unless WithCapacity asks for more room, in which case the
// contents are copied into a larger allocation.
func WithValues[T Ordered](values []T) Option[T] {
	return func(o *options[T]) {
		o.values = values
	}
}
