// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mmheap

// Ordered represents the set of types that can be stored in a heap; they
// must impose a total order via the < operator.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64 | ~string
}

// Heap represents a min-max heap. The zero value is not usable; create
// instances with New. The backing slice is fixed for the life of the heap
// and no operation allocates, so a Heap built over caller-supplied storage
// (see WithBacking) leaves the storage lifecycle entirely with the caller.
type Heap[T Ordered] struct {
	values []T // backing storage, len(values) is the capacity.
	n      int // number of live elements, values[n:] is scratch space.
}

// New creates a new instance of Heap. The default capacity is 1; use
// WithCapacity, WithBacking or WithValues to size it.
func New[T Ordered](opts ...Option[T]) *Heap[T] {
	var o options[T]
	o.capacity = 1
	for _, fn := range opts {
		fn(&o)
	}
	if o.backing != nil {
		return &Heap[T]{values: o.backing}
	}
	if o.values != nil {
		h := &Heap[T]{values: o.values, n: len(o.values)}
		if o.capacity > len(o.values) {
			h.values = make([]T, o.capacity)
			copy(h.values, o.values)
		}
		Heapify(h.values[:h.n])
		return h
	}
	return &Heap[T]{values: make([]T, o.capacity)}
}

// Len returns the number of items currently in the heap.
func (h *Heap[T]) Len() int { return h.n }

// Cap returns the fixed capacity of the heap.
func (h *Heap[T]) Cap() int { return len(h.values) }

// Values returns the live portion of the backing slice in heap order.
// It is a view rather than a copy; mutating it invalidates the heap.
func (h *Heap[T]) Values() []T { return h.values[:h.n] }

// Push adds v to the heap. It returns ErrHeapFull when the heap is at
// capacity.
func (h *Heap[T]) Push(v T) error {
	if h.n == len(h.values) {
		return ErrHeapFull
	}
	h.values[h.n] = v
	h.n++
	bubbleUp(h.values, h.n-1)
	return nil
}

// Min returns the smallest item in the heap, which is always the root.
func (h *Heap[T]) Min() (T, error) {
	var zero T
	if h.n == 0 {
		return zero, ErrEmptyHeap
	}
	return h.values[0], nil
}

// Max returns the largest item in the heap: the larger of the root's
// children, or the root itself when it has none.
func (h *Heap[T]) Max() (T, error) {
	var zero T
	if h.n == 0 {
		return zero, ErrEmptyHeap
	}
	if m, ok := maxChild(h.values, 0, h.n-1); ok {
		return h.values[m], nil
	}
	return h.values[0], nil
}

// PopMin removes and returns the smallest item in the heap.
func (h *Heap[T]) PopMin() (T, error) {
	var zero T
	if h.n == 0 {
		return zero, ErrEmptyHeap
	}
	a := h.values
	v := a[0]
	a[0], a[h.n-1] = a[h.n-1], a[0]
	h.n--
	if h.n > 0 {
		siftDown(a, 0, h.n-1)
	}
	return v, nil
}

// PopMax removes and returns the largest item in the heap.
func (h *Heap[T]) PopMax() (T, error) {
	var zero T
	if h.n == 0 {
		return zero, ErrEmptyHeap
	}
	m, ok := maxChild(h.values, 0, h.n-1)
	if !ok {
		m = 0
	}
	return h.RemoveAt(m)
}

// ReplaceAt overwrites the item at index i with v and restores the heap
// order around it: v sifts down when it strengthens the order for i's
// role and bubbles up (checking the immediate parent first) when it
// weakens it. The replaced item is returned. This is cheaper than a
// remove followed by a push.
func (h *Heap[T]) ReplaceAt(i int, v T) (T, error) {
	var zero T
	if h.n == 0 {
		return zero, ErrEmptyHeap
	}
	if i < 0 || i > h.n {
		return zero, ErrIndexOutOfRange
	}
	a, last := h.values, h.n-1
	old := a[i]
	a[i] = v
	if onMinLevel(i) {
		if v < old {
			bubbleUpMin(a, i)
			return old, nil
		}
		if hasParent(i) && a[parent(i)] < v {
			bubbleUp(a, i)
		}
		siftDown(a, i, last)
		return old, nil
	}
	if old < v {
		bubbleUpMax(a, i)
		return old, nil
	}
	if hasParent(i) && v < a[parent(i)] {
		bubbleUp(a, i)
	}
	siftDown(a, i, last)
	return old, nil
}

// RemoveAt removes and returns the item at index i, moving the last item
// into its place and restoring the heap order from there.
func (h *Heap[T]) RemoveAt(i int) (T, error) {
	var zero T
	if h.n == 0 {
		return zero, ErrEmptyHeap
	}
	if i < 0 || i > h.n {
		return zero, ErrIndexOutOfRange
	}
	old, err := h.ReplaceAt(i, h.values[h.n-1])
	if err != nil {
		return zero, err
	}
	h.n--
	return old, nil
}

// PushCircular adds v to the heap, evicting the current maximum when the
// heap is full. When not full it behaves as Push and returns the zero
// value and false. When full, a v smaller than the current maximum
// replaces it and the evicted maximum is returned with true; otherwise
// the heap is left untouched and v itself is returned with true. Note
// that callers distinguish eviction from rejection only by comparing the
// returned item against v. PushCircular never fails: a full heap retains
// the Cap() smallest items seen.
func (h *Heap[T]) PushCircular(v T) (T, bool) {
	var zero T
	if h.n < len(h.values) {
		h.values[h.n] = v
		h.n++
		bubbleUp(h.values, h.n-1)
		return zero, false
	}
	a, last := h.values, h.n-1
	m := 0
	if h.n > 1 {
		m, _ = maxChild(a, 0, last)
	}
	evicted := a[m]
	if !(v < evicted) {
		return v, true
	}
	a[m] = v
	if h.n > 1 {
		if v < a[0] {
			a[0], a[m] = a[m], a[0]
		}
		siftDown(a, m, last)
	}
	return evicted, true
}

// PushCircularMax is the mirror of PushCircular: when the heap is full it
// evicts the current minimum to admit a strictly larger value, so a full
// heap retains the Cap() largest items seen. The rejection convention is
// the same as PushCircular's.
func (h *Heap[T]) PushCircularMax(v T) (T, bool) {
	var zero T
	if h.n < len(h.values) {
		h.values[h.n] = v
		h.n++
		bubbleUp(h.values, h.n-1)
		return zero, false
	}
	a, last := h.values, h.n-1
	evicted := a[0]
	if !(evicted < v) {
		return v, true
	}
	a[0] = v
	if h.n > 1 {
		siftDown(a, 0, last)
	}
	return evicted, true
}

// Heapify reorders values into a min-max heap in place using Floyd's
// construction adapted to the alternating levels: every index with at
// least one child is sifted down, last to first, for O(n) total work.
func Heapify[T Ordered](values []T) {
	n := len(values)
	if n < 2 {
		return
	}
	for i := parent(n - 1); i >= 0; i-- {
		siftDown(values, i, n-1)
	}
}
