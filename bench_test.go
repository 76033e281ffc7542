// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mmheap_test

import (
	"math/rand"
	"testing"

	"cloudeng.io/mmheap"
)

const benchmarkInputSize = 10000

func zipfRand(seed int64, n int) []uint64 {
	rnd := rand.New(rand.NewSource(seed))                // #nosec: G404
	gen := rand.NewZipf(rnd, 3.0, 1.1, 8*1024*1024*1024) // 8Gib
	r := make([]uint64, n)
	for i := range r {
		r[i] = gen.Uint64()
	}
	return r
}

func benchmarkPushPop[T mmheap.Ordered](b *testing.B, keys []T, max bool) {
	h := mmheap.New(mmheap.WithCapacity[T](len(keys)))
	for i := 0; i < b.N; i++ {
		for _, k := range keys {
			if err := h.Push(k); err != nil {
				b.Fatal(err)
			}
		}
		for h.Len() > 0 {
			var err error
			if max {
				_, err = h.PopMax()
			} else {
				_, err = h.PopMin()
			}
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkPushPopMinDup_10000(b *testing.B) {
	b.ReportAllocs()
	keys := make([]int, benchmarkInputSize)
	b.ResetTimer()
	benchmarkPushPop(b, keys, false)
}

func BenchmarkPushPopMinRand_10000(b *testing.B) {
	b.ReportAllocs()
	keys := uniformRand(0, benchmarkInputSize)
	b.ResetTimer()
	benchmarkPushPop(b, keys, false)
}

func BenchmarkPushPopMaxRand_10000(b *testing.B) {
	b.ReportAllocs()
	keys := uniformRand(0, benchmarkInputSize)
	b.ResetTimer()
	benchmarkPushPop(b, keys, true)
}

func BenchmarkPushPopMinZipf_10000(b *testing.B) {
	b.ReportAllocs()
	keys := zipfRand(0, benchmarkInputSize)
	b.ResetTimer()
	benchmarkPushPop(b, keys, false)
}

func BenchmarkHeapify_10000(b *testing.B) {
	b.ReportAllocs()
	keys := uniformRand(0, benchmarkInputSize)
	buf := make([]int, len(keys))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, keys)
		mmheap.Heapify(buf)
	}
}

func BenchmarkPushCircular_10000(b *testing.B) {
	b.ReportAllocs()
	keys := uniformRand(0, benchmarkInputSize)
	h := mmheap.New(mmheap.WithCapacity[int](128))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, k := range keys {
			h.PushCircular(k)
		}
	}
}
