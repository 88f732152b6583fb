// Package coo stores one sparse 2-D index structure as coordinate pairs and
// lazily derives the auxiliary arrays needed to read the same data as CSR or
// CSC, without duplicating the coordinates.
//
// The coo package provides:
//
//   - SparseStorage — row/col coordinate arrays, an optional parallel value
//     array, and the logical matrix extent, kept in row-major sorted order.
//   - Lazy, memoized derived structures: Rowcount, Rowptr, Colcount, Colptr
//     and the mutually inverse CSR2CSC / CSC2CSR permutations.
//   - Coalesce for merging duplicate coordinates under a chosen reduction,
//     Resize for adjusting the logical extent, and functional transforms
//     (Apply, ApplyValue, Map) that relocate every materialized array at once.
//   - Process-wide cache control with a scoped disable guard, plus explicit
//     FillCache / ClearCache for precise memory control.
//
// Row-major order is the load-bearing invariant: the linearized key
// row*cols+col is non-decreasing across the coordinate arrays, and every
// derived structure assumes it. Construction (New) establishes the invariant
// once; operations either preserve it or rebuild from it.
//
// Heavy numeric steps (sorting, prefix sums, segmented reductions, pointer
// construction) are delegated to package kernel, selected by the residency
// of the data.
//
// No internal locking is performed: in-place mutation of a single instance
// is not safe from multiple goroutines, while pure operations on an
// unmutated source are. The process-wide cache flag is shared mutable state;
// toggling it concurrently is a caller hazard.
package coo
