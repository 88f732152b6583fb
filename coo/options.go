// SPDX-License-Identifier: MIT

// Package coo: functional configuration for construction (New).
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors, one per optional constructor input.
//
// Design goals:
//   - Deterministic behavior: options only carry data, never side effects.
//   - Options fields are unexported; the public API consumes ...Option.
//   - Every supplied derived array is validated in New against the shape
//     invariants before it is trusted.

package coo

import "github.com/katalvlaran/sparsekit/kernel"

// DEFAULTS - single source of truth for zero-value behavior.
//   - No value array (structural-only storage).
//   - Sparse size computed as (max row + 1, max col + 1).
//   - No pre-supplied derived arrays.
//   - Input treated as unsorted (New scans and sorts if needed).
//   - Device: kernel.CPU.

// options collects the optional inputs of New.
type options struct {
	val      []float64
	rows     int64
	cols     int64
	hasSize  bool
	rowcount []int64
	rowptr   []int64
	colcount []int64
	colptr   []int64
	csr2csc  []int64
	csc2csr  []int64
	sorted   bool
	device   kernel.Device
}

// Option mutates the unexported options state of New.
type Option func(*options)

// defaultOptions returns the documented zero-value configuration.
func defaultOptions() options {
	return options{device: kernel.CPU}
}

// WithValue attaches a payload sequence parallel to the coordinates.
// Length must equal the number of coordinates; validated in New.
func WithValue(val []float64) Option {
	return func(o *options) { o.val = val }
}

// WithSparseSize declares the logical matrix extent explicitly. Required
// when the index is empty; must cover every coordinate otherwise.
func WithSparseSize(rows, cols int64) Option {
	return func(o *options) {
		o.rows, o.cols = rows, cols
		o.hasSize = true
	}
}

// WithRowcount supplies a precomputed per-row entry count (length rows).
func WithRowcount(rowcount []int64) Option {
	return func(o *options) { o.rowcount = rowcount }
}

// WithRowptr supplies a precomputed CSR offset array (length rows+1).
func WithRowptr(rowptr []int64) Option {
	return func(o *options) { o.rowptr = rowptr }
}

// WithColcount supplies a precomputed per-column entry count (length cols).
func WithColcount(colcount []int64) Option {
	return func(o *options) { o.colcount = colcount }
}

// WithColptr supplies a precomputed CSC offset array (length cols+1).
func WithColptr(colptr []int64) Option {
	return func(o *options) { o.colptr = colptr }
}

// WithCSR2CSC supplies a precomputed row-major→column-major permutation.
// Discarded by New if the input had to be reordered: a permutation computed
// against the old ordering is meaningless against the new one.
func WithCSR2CSC(perm []int64) Option {
	return func(o *options) { o.csr2csc = perm }
}

// WithCSC2CSR supplies the inverse permutation of WithCSR2CSC; the same
// discard rule applies.
func WithCSC2CSR(perm []int64) Option {
	return func(o *options) { o.csc2csr = perm }
}

// WithSorted asserts the coordinates are already in row-major sorted order,
// skipping the monotonicity scan entirely. Supplying unsorted data under
// this hint breaks the core invariant; it is a caller error.
func WithSorted() Option {
	return func(o *options) { o.sorted = true }
}

// WithDevice tags the residency of the arrays, selecting which kernel
// backend serves the heavy numeric steps.
func WithDevice(d kernel.Device) Option {
	return func(o *options) { o.device = d }
}
