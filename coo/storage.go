// SPDX-License-Identifier: MIT

// Package coo: construction (the normalizer), accessors, and value setters.
//
// New is the single entry point that establishes the row-major invariant;
// every other operation either preserves it or rebuilds through it.

package coo

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/sparsekit/kernel"
)

// layoutWarn emits the single soft warning of this package (unset layout on
// a value setter). Structural violations are errors, never log lines.
var layoutWarn = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})

// New validates a raw coordinate/value input and produces a canonical,
// row-major-sorted storage instance.
//
// Stage 1 (Validate): row/col must be equal-length, non-negative sequences;
// the value array and every supplied derived array must match the shape
// invariants, each failure naming the offending field.
// Stage 2 (Extent): an omitted sparse size is computed as (max row + 1,
// max col + 1); an empty index without an explicit size is ErrEmptyIndex.
// Stage 3 (Sort): unless WithSorted was given, the linear keys row*cols+col
// are scanned once; only a non-monotone input pays for a stable argsort.
// Reordering discards ALL supplied derived arrays — a permutation pair built
// against the old ordering is meaningless, and count/pointer arrays are only
// kept when provably consistent with the final order, which a reorder is not.
//
// New takes ownership of the slices it is given; callers must not retain
// and mutate them afterwards.
// Complexity: O(nnz) validation + O(nnz log nnz) only when sorting is needed.
func New(row, col []int64, opts ...Option) (*SparseStorage, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Stage 1: structural validation of the raw input.
	if err := validateIndex(row, col); err != nil {
		return nil, err
	}
	nnz := len(row)
	if err := validateValue(o.val, nnz); err != nil {
		return nil, err
	}

	// Stage 2: resolve and validate the logical extent.
	rows, cols := o.rows, o.cols
	if !o.hasSize {
		if nnz == 0 {
			return nil, cooErrorf("sparse_size", ErrEmptyIndex)
		}
		rows, cols = maxInt64(row)+1, maxInt64(col)+1
	}
	if err := validateExtent(row, col, rows, cols); err != nil {
		return nil, err
	}

	// Stage 1b: supplied derived arrays must match the shape invariants.
	if err := validateCount(CacheRowcount, o.rowcount, rows); err != nil {
		return nil, err
	}
	if err := validatePtr(CacheRowptr, o.rowptr, rows); err != nil {
		return nil, err
	}
	if err := validateCount(CacheColcount, o.colcount, cols); err != nil {
		return nil, err
	}
	if err := validatePtr(CacheColptr, o.colptr, cols); err != nil {
		return nil, err
	}
	if err := validatePerm(CacheCSR2CSC, o.csr2csc, nnz); err != nil {
		return nil, err
	}
	if err := validatePerm(CacheCSC2CSR, o.csc2csr, nnz); err != nil {
		return nil, err
	}

	s := &SparseStorage{
		row:      row,
		col:      col,
		val:      o.val,
		rows:     rows,
		cols:     cols,
		device:   o.device,
		rowcount: o.rowcount,
		rowptr:   o.rowptr,
		colcount: o.colcount,
		colptr:   o.colptr,
		csr2csc:  o.csr2csc,
		csc2csr:  o.csc2csr,
	}

	// Stage 3: establish row-major order.
	if !o.sorted {
		keys := s.linearKeys()
		if !isNonDecreasing(keys) {
			perm := kernel.For(s.device).Argsort(keys)
			s.row = gatherInt64(s.row, perm)
			s.col = gatherInt64(s.col, perm)
			if s.val != nil {
				s.val = gatherFloat64(s.val, perm)
			}
			// Reordering invalidates every supplied derived array.
			s.rowcount, s.rowptr = nil, nil
			s.colcount, s.colptr = nil, nil
			s.csr2csc, s.csc2csr = nil, nil
		}
	}

	return s, nil
}

// Row returns the row coordinate array (read-only, length NNZ).
func (s *SparseStorage) Row() []int64 { return s.row }

// Col returns the column coordinate array (read-only, length NNZ).
func (s *SparseStorage) Col() []int64 { return s.col }

// Value returns the payload array, or nil for structural-only storage.
func (s *SparseStorage) Value() []float64 { return s.val }

// HasValue reports whether a payload array is present.
func (s *SparseStorage) HasValue() bool { return s.val != nil }

// NNZ reports the number of stored coordinates.
func (s *SparseStorage) NNZ() int { return len(s.row) }

// SparseSize returns the logical matrix extent (rows, cols).
func (s *SparseStorage) SparseSize() (rows, cols int64) { return s.rows, s.cols }

// Device reports where the instance's arrays reside.
func (s *SparseStorage) Device() kernel.Device { return s.device }

// getLayout resolves an unset layout tag to the default COO interpretation,
// warning once per call site occurrence; the warning is soft by contract.
func getLayout(l Layout) Layout {
	if l == LayoutUnset {
		layoutWarn.Warn("layout unset, assuming coo ordering; this may lead to unexpected behaviour")
		return LayoutCOO
	}
	return l
}

// orderValue brings an incoming value sequence into canonical row-major
// order. CSC-tagged input is gathered through the CSC2CSR permutation; COO
// and CSR input is already aligned.
func (s *SparseStorage) orderValue(val []float64, layout Layout) ([]float64, error) {
	if err := validateValue(val, s.NNZ()); err != nil {
		return nil, err
	}
	if getLayout(layout) == LayoutCSC {
		val = gatherFloat64(val, s.CSC2CSR())
	}
	return val, nil
}

// SetValue returns a new instance sharing this one's coordinate arrays but
// carrying val as its payload. Derived caches are carried over unchanged:
// coordinate order did not change. A LayoutCSC tag permutes val into
// row-major order first. Complexity: O(1), O(nnz) for CSC input.
func (s *SparseStorage) SetValue(val []float64, layout Layout) (*SparseStorage, error) {
	ordered, err := s.orderValue(val, layout)
	if err != nil {
		return nil, err
	}
	out := *s
	out.val = ordered
	return &out, nil
}

// SetValueInPlace replaces this instance's payload array in place; the same
// layout handling as SetValue applies. Not safe for concurrent use.
func (s *SparseStorage) SetValueInPlace(val []float64, layout Layout) error {
	ordered, err := s.orderValue(val, layout)
	if err != nil {
		return err
	}
	s.val = ordered
	return nil
}

// SetScalarValue returns a new instance whose payload is the scalar x
// broadcast across all NNZ entries. The fill is explicit: every slot holds x.
func (s *SparseStorage) SetScalarValue(x float64) *SparseStorage {
	out := *s
	out.val = broadcast(x, s.NNZ())
	return &out
}

// SetScalarValueInPlace broadcasts x across all entries in place.
func (s *SparseStorage) SetScalarValueInPlace(x float64) *SparseStorage {
	s.val = broadcast(x, s.NNZ())
	return s
}

// linearKeys computes the row-major linearization row*cols+col per entry.
func (s *SparseStorage) linearKeys() []int64 {
	keys := make([]int64, len(s.row))
	for i := range s.row {
		keys[i] = s.row[i]*s.cols + s.col[i]
	}
	return keys
}

// broadcast allocates a length-n slice filled with x.
func broadcast(x float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = x
	}
	return out
}

// isNonDecreasing reports whether keys are already in row-major order.
func isNonDecreasing(keys []int64) bool {
	for i := 1; i < len(keys); i++ {
		if keys[i] < keys[i-1] {
			return false
		}
	}
	return true
}

// maxInt64 returns the maximum of a non-empty slice.
func maxInt64(xs []int64) int64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

// gatherInt64 returns out with out[i] = src[perm[i]].
func gatherInt64(src, perm []int64) []int64 {
	out := make([]int64, len(perm))
	for i, p := range perm {
		out[i] = src[p]
	}
	return out
}

// gatherFloat64 returns out with out[i] = src[perm[i]].
func gatherFloat64(src []float64, perm []int64) []float64 {
	out := make([]float64, len(perm))
	for i, p := range perm {
		out[i] = src[p]
	}
	return out
}
