// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mmheap

import (
	"fmt"

	"cloudeng.io/errors"
)

// IsHeap reports whether values is ordered as a min-max heap. Equal
// values satisfy the ordering in both directions. The scan is bottom up,
// checking each parent against its most extreme child or grandchild for
// its role.
func IsHeap[T Ordered](values []T) bool {
	n := len(values)
	for i := n - 1; hasParent(i); i-- {
		p := parent(i)
		if onMinLevel(p) {
			if d, ok := minDescendant(values, p, n-1); ok && values[d.index] < values[p] {
				return false
			}
			continue
		}
		if d, ok := maxDescendant(values, p, n-1); ok && values[p] < values[d.index] {
			return false
		}
	}
	return true
}

// Validate is the diagnostic counterpart of IsHeap: rather than stopping
// at the first violation it checks every index and returns an error
// describing all of the orderings that do not hold, or nil.
func Validate[T Ordered](values []T) error {
	errs := errors.M{}
	n := len(values)
	for i := 0; i < n; i++ {
		if onMinLevel(i) {
			if d, ok := minDescendant(values, i, n-1); ok && values[d.index] < values[i] {
				errs.Append(fmt.Errorf("min level [%v] %v is larger than descendant [%v] %v", i, values[i], d.index, values[d.index]))
			}
			continue
		}
		if d, ok := maxDescendant(values, i, n-1); ok && values[i] < values[d.index] {
			errs.Append(fmt.Errorf("max level [%v] %v is smaller than descendant [%v] %v", i, values[i], d.index, values[d.index]))
		}
	}
	return errs.Err()
}

// Validate checks the live portion of the heap, see the package level
// Validate.
func (h *Heap[T]) Validate() error {
	return Validate(h.values[:h.n])
}
