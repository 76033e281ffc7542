// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mmheap

import "github.com/xlab/treeprint"

// String renders the live portion of the heap as an indented tree, which
// is considerably easier to read than the raw slice when debugging.
func (h *Heap[T]) String() string {
	tree := treeprint.New()
	if h.n > 0 {
		tree.SetValue(h.values[0])
		h.branch(tree, 0)
	}
	return tree.String()
}

func (h *Heap[T]) branch(node treeprint.Tree, i int) {
	for _, c := range []int{left(i), right(i)} {
		if c >= h.n {
			return
		}
		if left(c) < h.n {
			h.branch(node.AddBranch(h.values[c]), c)
			continue
		}
		node.AddNode(h.values[c])
	}
}
