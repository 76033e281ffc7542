// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package mmheap implements a min-max heap over a fixed-capacity backing
// slice, as described in:
//
//	M. D. Atkinson, J.-R. Sack, N. Santoro, and T. Strothotte. 1986.
//	Min-max heaps and generalized priority queues.
//	Commun. ACM 29, 10 (October 1986), 996-1000.
//	https://doi.org/10.1145/6617.6621
//
// The heap is a complete binary tree stored in slice form whose levels
// alternate between a min role and a max role: an index on an even level
// is no larger than any of its descendants, an index on an odd level is
// no smaller. The minimum is therefore always at the root and the maximum
// at one of the root's children, giving O(1) access to both extremes and
// O(log n) insertion and removal at either end.
//
// The backing storage is fixed for the life of the heap: no operation
// allocates or grows it. Push fails once the heap is at capacity, while
// PushCircular and PushCircularMax trade the current maximum or minimum
// for the new value instead. The heap is not safe for concurrent use;
// callers sharing one across goroutines must serialize access themselves.
package mmheap
