// Package sparsekit is an in-memory toolkit for sparse 2-D coordinate
// storage: keep one set of (row, column) pairs plus optional values, read it
// as COO, CSR or CSC, and pay each conversion cost at most once.
//
// 🚀 What is sparsekit?
//
//	A small, deterministic library that brings together:
//		• Canonical COO storage: validated, row-major-sorted coordinates
//		• Lazy compressed views: row/column counts, pointers, and the
//		  CSR↔CSC permutation pair, memoized on first access
//		• Coalescing: merge duplicate coordinates under sum/min/max/mul/mean
//		• Resizing & functional transforms that keep cached state honest
//		• Scoped cache control for one-shot intermediate structures
//
// ✨ Why choose sparsekit?
//
//   - Single invariant – everything derives from row-major order, nothing
//     is kept in sync incrementally
//   - Pay once – derived structures are computed lazily and cached, with a
//     scoped guard to skip caching for throwaway intermediates
//   - Pluggable kernels – heavy numeric steps go through a backend selected
//     by data residency, so accelerator implementations drop in at runtime
//
// Everything is organized under three packages:
//
//	coo/    — SparseStorage: normalization, derived caches, coalesce,
//	          resize, transforms, cache control
//	kernel/ — numeric primitives (argsort, prefix sums, segmented
//	          reductions, pointer construction) and the device registry
//	cmd/    — the sparsekit inspection CLI
//
// Quick example:
//
//	s, err := coo.New([]int64{1, 0}, []int64{0, 1})   // unsorted input
//	if err != nil { ... }
//	s.Rowptr()   // [0 1 2] — CSR offsets, computed once
//	s.CSR2CSC()  // permutation into column-major enumeration
package sparsekit
