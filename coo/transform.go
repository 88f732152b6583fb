// SPDX-License-Identifier: MIT

// Package coo: functional transforms over every materialized array.
//
// The transforms exist for bulk relocation and bulk rewriting: one call
// touches the coordinate arrays, the value array if present, and every
// ALREADY materialized derived cache — absent caches stay absent and are
// computed lazily later, against the transformed arrays, if ever accessed.
//
// Every transform is assumed order-preserving. A mapping that reorders
// elements breaks the row-major invariant; that is a caller error, not a
// validated condition.

package coo

// IndexFunc maps one integer array to another, elementwise and
// order-preserving. A nil IndexFunc is the identity.
type IndexFunc func([]int64) []int64

// ValueFunc maps the payload array, elementwise and order-preserving.
// A nil ValueFunc is the identity.
type ValueFunc func([]float64) []float64

// Arrays is the bulk-extraction result of Map: the instance's underlying
// arrays after mapping, without a storage wrapper around them. Cache fields
// are nil where the corresponding structure was not materialized.
type Arrays struct {
	Row, Col []int64
	Value    []float64
	Rowcount []int64
	Rowptr   []int64
	Colcount []int64
	Colptr   []int64
	CSR2CSC  []int64
	CSC2CSR  []int64
}

// applyIdx runs fn over a possibly-nil array, treating nil fn as identity.
func applyIdx(fn IndexFunc, src []int64) []int64 {
	if fn == nil || src == nil {
		return src
	}
	return fn(src)
}

// applyVal runs fn over a possibly-nil value array, nil fn is identity.
func applyVal(fn ValueFunc, src []float64) []float64 {
	if fn == nil || src == nil {
		return src
	}
	return fn(src)
}

// Apply returns a new, independent instance with idx applied to the
// coordinate arrays and every materialized cache, and val applied to the
// value array if present. The result keeps the same extent and device tag,
// and is taken as already sorted (idx must be order-preserving).
func (s *SparseStorage) Apply(idx IndexFunc, val ValueFunc) *SparseStorage {
	return &SparseStorage{
		row:      applyIdx(idx, s.row),
		col:      applyIdx(idx, s.col),
		val:      applyVal(val, s.val),
		rows:     s.rows,
		cols:     s.cols,
		device:   s.device,
		rowcount: applyIdx(idx, s.rowcount),
		rowptr:   applyIdx(idx, s.rowptr),
		colcount: applyIdx(idx, s.colcount),
		colptr:   applyIdx(idx, s.colptr),
		csr2csc:  applyIdx(idx, s.csr2csc),
		csc2csr:  applyIdx(idx, s.csc2csr),
	}
}

// ApplyInPlace is Apply mutating the receiver's fields directly.
// Not safe for concurrent use.
func (s *SparseStorage) ApplyInPlace(idx IndexFunc, val ValueFunc) *SparseStorage {
	s.row = applyIdx(idx, s.row)
	s.col = applyIdx(idx, s.col)
	s.val = applyVal(val, s.val)
	s.rowcount = applyIdx(idx, s.rowcount)
	s.rowptr = applyIdx(idx, s.rowptr)
	s.colcount = applyIdx(idx, s.colcount)
	s.colptr = applyIdx(idx, s.colptr)
	s.csr2csc = applyIdx(idx, s.csr2csc)
	s.csc2csr = applyIdx(idx, s.csc2csr)
	return s
}

// ApplyValue returns a new instance with val applied to the payload array
// only; coordinates and every derived cache carry over untouched.
func (s *SparseStorage) ApplyValue(val ValueFunc) *SparseStorage {
	out := *s
	out.val = applyVal(val, s.val)
	return &out
}

// ApplyValueInPlace is ApplyValue mutating the receiver.
func (s *SparseStorage) ApplyValueInPlace(val ValueFunc) *SparseStorage {
	s.val = applyVal(val, s.val)
	return s
}

// Map applies idx/val across the coordinate arrays, the value array if
// present, and every materialized cache, and returns the resulting arrays
// directly — bulk extraction without reconstructing the wrapper.
func (s *SparseStorage) Map(idx IndexFunc, val ValueFunc) Arrays {
	return Arrays{
		Row:      applyIdx(idx, s.row),
		Col:      applyIdx(idx, s.col),
		Value:    applyVal(val, s.val),
		Rowcount: applyIdx(idx, s.rowcount),
		Rowptr:   applyIdx(idx, s.rowptr),
		Colcount: applyIdx(idx, s.colcount),
		Colptr:   applyIdx(idx, s.colptr),
		CSR2CSC:  applyIdx(idx, s.csr2csc),
		CSC2CSR:  applyIdx(idx, s.csc2csr),
	}
}

// Copy returns a new instance sharing this one's arrays (a shallow copy of
// the wrapper only).
func (s *SparseStorage) Copy() *SparseStorage {
	return s.Apply(nil, nil)
}

// Clone returns a deep copy: every array, including materialized caches,
// is duplicated into fresh backing storage.
func (s *SparseStorage) Clone() *SparseStorage {
	return s.Apply(cloneInt64s, cloneFloat64s)
}

// cloneInt64s duplicates an integer array.
func cloneInt64s(src []int64) []int64 {
	out := make([]int64, len(src))
	copy(out, src)
	return out
}

// cloneFloat64s duplicates the payload array.
func cloneFloat64s(src []float64) []float64 {
	out := make([]float64, len(src))
	copy(out, src)
	return out
}
