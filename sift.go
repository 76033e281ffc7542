// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mmheap

// siftDown restores order below index i, which may hold an arbitrary
// value, within a[0..last]. The role is decided once here; the variants
// then descend two levels at a time so that every swap stays within the
// same role.
func siftDown[T Ordered](a []T, i, last int) {
	if onMinLevel(i) {
		siftDownMin(a, i, last)
		return
	}
	siftDownMax(a, i, last)
}

// siftDownMin sifts a min-level index toward the leaves. A violating
// direct child needs a single swap and the descent ends there; a violating
// grandchild swaps with i and then, if the value now breaks the one-level
// relation with its max-level parent, swaps once more before the descent
// continues from the grandchild's position.
func siftDownMin[T Ordered](a []T, i, last int) {
	for {
		d, ok := minDescendant(a, i, last)
		if !ok {
			return
		}
		m := d.index
		if !d.grandchild {
			if a[m] < a[i] {
				a[m], a[i] = a[i], a[m]
			}
			return
		}
		if !(a[m] < a[i]) {
			return
		}
		a[m], a[i] = a[i], a[m]
		if p := parent(m); a[p] < a[m] {
			a[m], a[p] = a[p], a[m]
		}
		i = m
	}
}

// siftDownMax is the max-role counterpart of siftDownMin.
func siftDownMax[T Ordered](a []T, i, last int) {
	for {
		d, ok := maxDescendant(a, i, last)
		if !ok {
			return
		}
		m := d.index
		if !d.grandchild {
			if a[i] < a[m] {
				a[m], a[i] = a[i], a[m]
			}
			return
		}
		if !(a[i] < a[m]) {
			return
		}
		a[m], a[i] = a[i], a[m]
		if p := parent(m); a[m] < a[p] {
			a[m], a[p] = a[p], a[m]
		}
		i = m
	}
}

// bubbleUp restores order above index i. A single-level violation against
// the parent (which is on the opposite role) is fixed first, after which
// the climb continues in the parent's role; otherwise the value climbs
// grandparent by grandparent within its own role.
func bubbleUp[T Ordered](a []T, i int) {
	if onMinLevel(i) {
		if hasParent(i) && a[parent(i)] < a[i] {
			a[i], a[parent(i)] = a[parent(i)], a[i]
			bubbleUpMax(a, parent(i))
			return
		}
		bubbleUpMin(a, i)
		return
	}
	if hasParent(i) && a[i] < a[parent(i)] {
		a[i], a[parent(i)] = a[parent(i)], a[i]
		bubbleUpMin(a, parent(i))
		return
	}
	bubbleUpMax(a, i)
}

// bubbleUpMin climbs a min-level index toward the root two levels at a
// time, swapping while the grandparent relation is violated.
func bubbleUpMin[T Ordered](a []T, i int) {
	for hasGParent(i) {
		g := gparent(i)
		if !(a[i] < a[g]) {
			return
		}
		a[i], a[g] = a[g], a[i]
		i = g
	}
}

// bubbleUpMax is the max-role counterpart of bubbleUpMin.
func bubbleUpMax[T Ordered](a []T, i int) {
	for hasGParent(i) {
		g := gparent(i)
		if !(a[g] < a[i]) {
			return
		}
		a[i], a[g] = a[g], a[i]
		i = g
	}
}
