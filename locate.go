// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mmheap

// The locators below operate on a[0..last] inclusive and use strict
// comparisons throughout, so ties always resolve to the earlier index.

// descendant identifies the child or grandchild selected by minDescendant
// and maxDescendant. Sift-down needs to know which of the two it was given
// since the grandchild case requires the extra parent fix-up.
type descendant struct {
	index      int
	grandchild bool
}

// minChild returns the index of the smaller-valued child of i, or false
// if i has no children within a[0..last].
func minChild[T Ordered](a []T, i, last int) (int, bool) {
	m := left(i)
	if m > last {
		return 0, false
	}
	if r := right(i); r <= last && a[r] < a[m] {
		m = r
	}
	return m, true
}

// maxChild returns the index of the larger-valued child of i, or false
// if i has no children within a[0..last].
func maxChild[T Ordered](a []T, i, last int) (int, bool) {
	m := left(i)
	if m > last {
		return 0, false
	}
	if r := right(i); r <= last && a[m] < a[r] {
		m = r
	}
	return m, true
}

// minGrandchild returns the index of the smallest-valued grandchild of i,
// bounds checking each of the four candidates, or false if i has no
// grandchildren within a[0..last].
func minGrandchild[T Ordered](a []T, i, last int) (int, bool) {
	l, r := left(i), right(i)
	m := left(l)
	if m > last {
		return 0, false
	}
	if c := right(l); c <= last && a[c] < a[m] {
		m = c
	}
	if c := left(r); c <= last && a[c] < a[m] {
		m = c
	}
	if c := right(r); c <= last && a[c] < a[m] {
		m = c
	}
	return m, true
}

// maxGrandchild is the max-role counterpart of minGrandchild.
func maxGrandchild[T Ordered](a []T, i, last int) (int, bool) {
	l, r := left(i), right(i)
	m := left(l)
	if m > last {
		return 0, false
	}
	if c := right(l); c <= last && a[m] < a[c] {
		m = c
	}
	if c := left(r); c <= last && a[m] < a[c] {
		m = c
	}
	if c := right(r); c <= last && a[m] < a[c] {
		m = c
	}
	return m, true
}

// minDescendant returns the smallest-valued child or grandchild of i,
// tagged with which of the two it is. It reports false iff i has no
// children; a grandchild wins only on a strict comparison.
func minDescendant[T Ordered](a []T, i, last int) (descendant, bool) {
	m, ok := minChild(a, i, last)
	if !ok {
		return descendant{}, false
	}
	if g, ok := minGrandchild(a, i, last); ok && a[g] < a[m] {
		return descendant{index: g, grandchild: true}, true
	}
	return descendant{index: m}, true
}

// maxDescendant is the max-role counterpart of minDescendant.
func maxDescendant[T Ordered](a []T, i, last int) (descendant, bool) {
	m, ok := maxChild(a, i, last)
	if !ok {
		return descendant{}, false
	}
	if g, ok := maxGrandchild(a, i, last); ok && a[m] < a[g] {
		return descendant{index: g, grandchild: true}, true
	}
	return descendant{index: m}, true
}
