// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mmheap

import "math/bits"

// The heap is an implicit complete binary tree: children of index i live
// at 2i+1 and 2i+2, its parent at (i-1)/2.

func parent(i int) int { return (i - 1) / 2 }

func left(i int) int { return (2 * i) + 1 }

func right(i int) int { return (2 * i) + 2 }

func gparent(i int) int { return parent(parent(i)) }

func hasParent(i int) bool { return i > 0 }

func hasGParent(i int) bool { return i > 2 }

func isChild(i, c int) bool { return c == left(i) || c == right(i) }

// onMinLevel reports whether index i is on a min level. Levels alternate
// min, max, min, ... from the root, so the role is the parity of
// floor(log2(i+1)).
func onMinLevel(i int) bool {
	return (bits.Len(uint(i)+1)-1)%2 == 0
}
