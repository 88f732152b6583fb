// SPDX-License-Identifier: MIT

// Package coo: duplicate-coordinate coalescing.

package coo

import "github.com/katalvlaran/sparsekit/kernel"

// IsCoalesced reports whether every stored coordinate is distinct, i.e. the
// linear key sequence is strictly increasing. Complexity: O(nnz).
func (s *SparseStorage) IsCoalesced() bool {
	keys := s.linearKeys()
	for i := 1; i < len(keys); i++ {
		if keys[i] <= keys[i-1] {
			return false
		}
	}
	return true
}

// Coalesce merges duplicate coordinates into one entry per distinct
// (row, col), combining their values with op (kernel.Sum is the zero-value
// default). An already-coalesced instance is returned unchanged — callers
// can rely on the reference-equal fast path to make Coalesce idempotent and
// allocation-free in the common case.
//
// The result is a new instance, already row-major by construction, with no
// carried-over derived caches: the coordinate count changed, so cached
// pointer/count/permutation arrays are stale. Complexity: O(nnz).
func (s *SparseStorage) Coalesce(op kernel.Reduce) *SparseStorage {
	keys := s.linearKeys()

	// mask marks the first occurrence of each distinct key; the sorted
	// invariant makes duplicates contiguous, so key[i] > key[i-1] suffices.
	mask := make([]bool, len(keys))
	distinct := 0
	for i := range keys {
		if i == 0 || keys[i] > keys[i-1] {
			mask[i] = true
			distinct++
		}
	}
	if distinct == len(keys) {
		return s
	}

	row := make([]int64, 0, distinct)
	col := make([]int64, 0, distinct)
	for i, keep := range mask {
		if keep {
			row = append(row, s.row[i])
			col = append(col, s.col[i])
		}
	}

	var val []float64
	if s.HasValue() {
		// Group ids are the running count of first-occurrence marks minus
		// one: every duplicate inherits the id of its first occurrence.
		groupID := make([]int64, len(mask))
		g := int64(-1)
		for i, keep := range mask {
			if keep {
				g++
			}
			groupID[i] = g
		}
		val = kernel.For(s.device).SegmentReduce(groupID, s.val, distinct, op)
	}

	return &SparseStorage{
		row:    row,
		col:    col,
		val:    val,
		rows:   s.rows,
		cols:   s.cols,
		device: s.device,
	}
}
