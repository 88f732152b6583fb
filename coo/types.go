// SPDX-License-Identifier: MIT

// Package coo: domain types. This file intentionally contains ONLY the
// storage entity and the small enumerations consumed by its operations.
// Errors and options live in dedicated files (errors.go, options.go) per the
// package conventions.

package coo

import (
	"fmt"

	"github.com/katalvlaran/sparsekit/kernel"
)

// SparseStorage holds one sparse 2-D index structure: two parallel
// coordinate arrays in row-major sorted order, an optional parallel value
// array, the logical matrix extent, and six lazily derived caches.
//
// The coordinate and value slices are owned exclusively by the instance;
// accessors hand out the underlying slices for zero-copy reads and callers
// must not mutate them. All in-place mutation goes through the explicit
// *InPlace operations.
type SparseStorage struct {
	// row and col are the two parallel coordinate sequences, length nnz,
	// sorted so that row*cols+col is non-decreasing.
	row []int64
	col []int64

	// val carries one payload per coordinate; nil means structural only
	// (every coordinate implicitly present with an implied unit value).
	val []float64

	// rows and cols form the logical extent; always at least max+1 of the
	// coordinates actually present.
	rows int64
	cols int64

	// device tags where the arrays reside and selects the kernel backend.
	device kernel.Device

	// Derived caches: nil means not yet computed (or invalidated).
	rowcount []int64
	rowptr   []int64
	colcount []int64
	colptr   []int64
	csr2csc  []int64
	csc2csr  []int64
}

// CacheKey names one of the six derived structures for FillCache/ClearCache
// and CachedKeys.
type CacheKey string

const (
	CacheRowcount CacheKey = "rowcount"
	CacheRowptr   CacheKey = "rowptr"
	CacheColcount CacheKey = "colcount"
	CacheColptr   CacheKey = "colptr"
	CacheCSR2CSC  CacheKey = "csr2csc"
	CacheCSC2CSR  CacheKey = "csc2csr"
)

// cacheKeys lists all derived-structure names in canonical order.
var cacheKeys = []CacheKey{
	CacheRowcount, CacheRowptr, CacheColcount, CacheColptr, CacheCSR2CSC, CacheCSC2CSR,
}

// Layout tags the ordering of an incoming value sequence. It is consumed
// only by the value-setting operations, which permute CSC-ordered input into
// the canonical row-major order before storing it.
type Layout uint8

const (
	// LayoutUnset means the caller did not state an ordering; value setters
	// fall back to LayoutCOO with a non-fatal warning.
	LayoutUnset Layout = iota
	// LayoutCOO marks values aligned to the canonical coordinate order.
	LayoutCOO
	// LayoutCSR marks row-major compressed order, which coincides with the
	// canonical order; no permutation is applied.
	LayoutCSR
	// LayoutCSC marks column-major order; values are permuted via CSC2CSR
	// before storage.
	LayoutCSC
)

// String returns the canonical lower-case layout name.
func (l Layout) String() string {
	switch l {
	case LayoutUnset:
		return "unset"
	case LayoutCOO:
		return "coo"
	case LayoutCSR:
		return "csr"
	case LayoutCSC:
		return "csc"
	default:
		return fmt.Sprintf("layout(%d)", uint8(l))
	}
}
