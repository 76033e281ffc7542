// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mmheap

import "cloudeng.io/errors"

// The errors returned by heap operations represent contract violations
// by the caller: the operations are deterministic, so retrying without
// first changing the heap reproduces the same failure.
var (
	// ErrEmptyHeap is returned by queries and removals on an empty heap.
	ErrEmptyHeap = errors.New("empty heap")

	// ErrIndexOutOfRange is returned by ReplaceAt and RemoveAt when the
	// index lies beyond the end of the heap.
	ErrIndexOutOfRange = errors.New("index beyond end of heap")

	// ErrHeapFull is returned by Push when the heap is at capacity.
	ErrHeapFull = errors.New("heap is full")
)
