// SPDX-License-Identifier: MIT
// Package: coo
//
// Purpose:
//  - Provide a single, canonical source of truth for construction-time checks.
//  - Keep New minimal by delegating shape/length/range checks here.
//  - Return sentinel errors wrapped with a tag naming the offending field so
//    call sites can both grep the message and match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, and allocate nothing.
//  - Range scans are O(nnz); everything else is O(1).

package coo

import "fmt"

// cooErrorf wraps an underlying sentinel with the given field/validator tag.
func cooErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateIndex ensures row and col form two equal-length sequences of
// non-negative integers. Complexity: O(nnz).
func validateIndex(row, col []int64) error {
	if len(row) != len(col) {
		return cooErrorf("index", ErrIndexMismatch)
	}
	for i := range row {
		if row[i] < 0 || col[i] < 0 {
			return cooErrorf("index", ErrNegativeCoordinate)
		}
	}
	return nil
}

// validateExtent ensures the declared size is positive and covers every
// stored coordinate. Complexity: O(nnz).
func validateExtent(row, col []int64, rows, cols int64) error {
	if rows <= 0 || cols <= 0 {
		return cooErrorf("sparse_size", ErrBadShape)
	}
	for i := range row {
		if row[i] >= rows || col[i] >= cols {
			return cooErrorf("sparse_size", ErrCoordinateOutOfRange)
		}
	}
	return nil
}

// validateValue ensures a non-nil value sequence is parallel to the index.
func validateValue(val []float64, nnz int) error {
	if val != nil && len(val) != nnz {
		return cooErrorf("value", ErrValueMismatch)
	}
	return nil
}

// validateCount ensures a supplied count array has exactly one slot per
// row/column of its dimension.
func validateCount(field CacheKey, arr []int64, dim int64) error {
	if arr != nil && int64(len(arr)) != dim {
		return cooErrorf(string(field), ErrCacheShape)
	}
	return nil
}

// validatePtr ensures a supplied pointer array has dim+1 offsets.
func validatePtr(field CacheKey, arr []int64, dim int64) error {
	if arr != nil && int64(len(arr)) != dim+1 {
		return cooErrorf(string(field), ErrCacheShape)
	}
	return nil
}

// validatePerm ensures a supplied permutation covers every stored entry.
func validatePerm(field CacheKey, arr []int64, nnz int) error {
	if arr != nil && len(arr) != nnz {
		return cooErrorf(string(field), ErrCacheShape)
	}
	return nil
}
