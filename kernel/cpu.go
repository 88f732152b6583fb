// SPDX-License-Identifier: MIT

// Package kernel: host-resident implementation of the Backend contract.
// Plain single-pass loops; no hidden parallelism, fully deterministic.

package kernel

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// cpuBackend implements Backend for host-resident slices.
type cpuBackend struct{}

// Argsort computes the stable sort permutation of keys via sort.SliceStable.
// Stability is load-bearing: normalization relies on equal keys keeping
// their input order so that duplicate coordinates stay adjacent in a
// reproducible order.
func (cpuBackend) Argsort(keys []int64) []int64 {
	perm := iota64(len(keys))
	sort.SliceStable(perm, func(i, j int) bool {
		return keys[perm[i]] < keys[perm[j]]
	})
	return perm
}

// CumSum returns the exclusive prefix sum, length len(src)+1.
func (cpuBackend) CumSum(src []int64) []int64 {
	return cumSum(src)
}

// ScatterCount buckets ids by value. ids outside [0, buckets) are a caller
// error; the count loop skips them rather than panicking.
func (cpuBackend) ScatterCount(ids []int64, buckets int) []int64 {
	out := make([]int64, buckets)
	for _, id := range ids {
		if id >= 0 && id < int64(buckets) {
			out[id]++
		}
	}
	return out
}

// SegmentReduce combines contiguous runs of values sharing a group id.
// Groups absent from groupID keep the operator's neutral element (0 for
// Sum/Mean, 1 for Mul) or 0 for Min/Max, matching an empty-segment fold.
func (cpuBackend) SegmentReduce(groupID []int64, values []float64, groups int, op Reduce) []float64 {
	out := make([]float64, groups)
	if op == Mul {
		for g := range out {
			out[g] = 1
		}
	}
	seen := make([]bool, groups)
	size := make([]int64, groups)
	for i, g := range groupID {
		v := values[i]
		size[g]++
		if !seen[g] {
			// First element of the run seeds the accumulator for every
			// operator, so Min/Max never compare against the neutral 0.
			seen[g] = true
			if op != Mul {
				out[g] = v
				continue
			}
		}
		switch op {
		case Sum, Mean:
			out[g] += v
		case Min:
			if v < out[g] {
				out[g] = v
			}
		case Max:
			if v > out[g] {
				out[g] = v
			}
		case Mul:
			out[g] *= v
		}
	}
	if op == Mean {
		for g := range out {
			if size[g] > 0 {
				out[g] /= float64(size[g])
			}
		}
	}
	return out
}

// Rowptr builds the buckets+1 offset array from a sorted bucket sequence.
// Counting then prefix-summing keeps the routine branch-light and makes the
// ptr identities (ptr[0]==0, ptr[buckets]==len(sorted)) hold by construction.
func (cpuBackend) Rowptr(sorted []int64, buckets int) []int64 {
	count := make([]int64, buckets)
	for _, b := range sorted {
		count[b]++
	}
	return cumSum(count)
}

// iota64 returns [0, 1, ..., n-1].
func iota64(n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(i)
	}
	return out
}

// cumSum is the generic exclusive prefix sum shared by CumSum and Rowptr.
func cumSum[T constraints.Integer](src []T) []T {
	out := make([]T, len(src)+1)
	for i, v := range src {
		out[i+1] = out[i] + v
	}
	return out
}
