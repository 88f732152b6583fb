// SPDX-License-Identifier: MIT

// Package coo: logical-extent resizing.

package coo

// Resize returns a new instance with the logical extent set to (rows, cols)
// and any materialized count/pointer arrays adjusted consistently. Resizing
// never adds or removes coordinates — the raw coordinate/value arrays pass
// through untouched, as do the CSR2CSC/CSC2CSR permutations (they depend on
// coordinate order only, not on the extent).
//
// Growing a dimension extends its count array with zeros and its pointer
// array with NNZ repeated per new position (no entries exist there, so the
// offset does not advance). Shrinking truncates the tail by the difference.
//
// Truncating a dimension whose removed region still contains entries is a
// CALLER ERROR: it silently produces count/pointer arrays inconsistent with
// the coordinates. This is deliberately not validated here; callers resize
// below max+1 at their own risk.
//
// Complexity: O(rows + cols) when caches are materialized, O(1) otherwise.
func (s *SparseStorage) Resize(rows, cols int64) (*SparseStorage, error) {
	if rows <= 0 || cols <= 0 {
		return nil, cooErrorf("sparse_size", ErrBadShape)
	}

	nnz := int64(s.NNZ())
	out := *s
	out.rows, out.cols = rows, cols

	out.rowcount = resizeCount(s.rowcount, rows-s.rows)
	out.rowptr = resizePtr(s.rowptr, rows-s.rows, nnz)
	out.colcount = resizeCount(s.colcount, cols-s.cols)
	out.colptr = resizePtr(s.colptr, cols-s.cols, nnz)

	return &out, nil
}

// resizeCount pads a count array with zeros or truncates its tail.
// A nil (unmaterialized) array stays nil; diff 0 copies unchanged.
func resizeCount(count []int64, diff int64) []int64 {
	if count == nil {
		return nil
	}
	if diff >= 0 {
		out := make([]int64, int64(len(count))+diff)
		copy(out, count)
		return out
	}
	out := make([]int64, int64(len(count))+diff)
	copy(out, count[:len(out)])
	return out
}

// resizePtr pads a pointer array with nnz (the non-advancing offset) or
// truncates its tail. A nil array stays nil.
func resizePtr(ptr []int64, diff, nnz int64) []int64 {
	if ptr == nil {
		return nil
	}
	if diff >= 0 {
		out := make([]int64, int64(len(ptr))+diff)
		copy(out, ptr)
		for i := len(ptr); i < len(out); i++ {
			out[i] = nnz
		}
		return out
	}
	out := make([]int64, int64(len(ptr))+diff)
	copy(out, ptr[:len(out)])
	return out
}
