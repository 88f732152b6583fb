// SPDX-License-Identifier: MIT

// Package coo: the derived-structure cache and its process-wide control.
//
// Each of the six derived structures is an explicit optional field plus a
// pure computation path; the flag gates the WRITE of the cache, never the
// computation, so disabling caching changes memory behavior only, never
// results. CSR quantities are cheap because the data is already row-sorted;
// CSC quantities need either a second sort (CSR2CSC) or an independent
// bucket count (Colcount/Colptr without the permutation) — the two Colptr
// paths let a caller who only needs counts avoid paying for the full
// permutation.

package coo

import "github.com/katalvlaran/sparsekit/kernel"

// cacheEnabled is the process-wide memoization flag. It is plain shared
// state with no synchronization; concurrent toggling is a caller hazard.
var cacheEnabled = true

// CacheEnabled reports whether derived-structure memoization is enabled.
func CacheEnabled() bool { return cacheEnabled }

// SetCacheEnabled switches derived-structure memoization on or off for the
// whole process.
func SetCacheEnabled(on bool) { cacheEnabled = on }

// NoCache is a scoped cache-disable guard. DisableCache captures the prior
// flag value and disables memoization; Release restores the captured value,
// so guards nest correctly and early-return paths stay safe under defer.
type NoCache struct {
	prev bool
}

// DisableCache saves the current flag, disables memoization, and returns
// the guard whose Release restores the saved value.
//
//	guard := coo.DisableCache()
//	defer guard.Release()
func DisableCache() *NoCache {
	g := &NoCache{prev: cacheEnabled}
	cacheEnabled = false
	return g
}

// Release restores the flag value captured by DisableCache.
func (g *NoCache) Release() { cacheEnabled = g.prev }

// WithoutCache runs fn with memoization disabled, restoring the prior flag
// on every exit path, including panics.
func WithoutCache(fn func()) {
	guard := DisableCache()
	defer guard.Release()
	fn()
}

// ---------- lazy accessors ----------

// Rowptr returns the CSR offset array (length rows+1): rowptr[0] = 0,
// rowptr[rows] = NNZ, and rowptr[i+1]-rowptr[i] entries in row i. Built by
// the pointer-construction primitive over the sorted row coordinates.
// Complexity: O(nnz + rows) on first access, O(1) memoized.
func (s *SparseStorage) Rowptr() []int64 {
	if s.rowptr != nil {
		return s.rowptr
	}
	ptr := kernel.For(s.device).Rowptr(s.row, int(s.rows))
	if cacheEnabled {
		s.rowptr = ptr
	}
	return ptr
}

// Rowcount returns the per-row entry count (length rows), derived as the
// difference of consecutive Rowptr offsets.
func (s *SparseStorage) Rowcount() []int64 {
	if s.rowcount != nil {
		return s.rowcount
	}
	count := diff(s.Rowptr())
	if cacheEnabled {
		s.rowcount = count
	}
	return count
}

// Colcount returns the per-column entry count (length cols). Derived by
// difference when Colptr is already materialized; computed independently by
// a segmented increment over the column coordinates otherwise, so callers
// who only need counts never pay for a permutation.
func (s *SparseStorage) Colcount() []int64 {
	if s.colcount != nil {
		return s.colcount
	}
	var count []int64
	if s.colptr != nil {
		count = diff(s.colptr)
	} else {
		count = kernel.For(s.device).ScatterCount(s.col, int(s.cols))
	}
	if cacheEnabled {
		s.colcount = count
	}
	return count
}

// Colptr returns the CSC offset array (length cols+1). When the CSR2CSC
// permutation is already materialized, it is built by the pointer primitive
// over the columns taken in CSC order; otherwise it is the exclusive
// cumulative sum of Colcount.
func (s *SparseStorage) Colptr() []int64 {
	if s.colptr != nil {
		return s.colptr
	}
	var ptr []int64
	if s.csr2csc != nil {
		ptr = kernel.For(s.device).Rowptr(gatherInt64(s.col, s.csr2csc), int(s.cols))
	} else {
		ptr = kernel.For(s.device).CumSum(s.Colcount())
	}
	if cacheEnabled {
		s.colptr = ptr
	}
	return ptr
}

// CSR2CSC returns the permutation translating row-major enumeration into
// column-major: CSR2CSC()[k] is the CSC position of the k-th CSR entry.
// Derived, always and only, as the stable argsort of the column-major keys
// rows*col+row; it is never kept in sync incrementally — any mutation that
// changes coordinate order invalidates it. Complexity: O(nnz log nnz).
func (s *SparseStorage) CSR2CSC() []int64 {
	if s.csr2csc != nil {
		return s.csr2csc
	}
	keys := make([]int64, len(s.col))
	for i := range s.col {
		keys[i] = s.rows*s.col[i] + s.row[i]
	}
	perm := kernel.For(s.device).Argsort(keys)
	if cacheEnabled {
		s.csr2csc = perm
	}
	return perm
}

// CSC2CSR returns the inverse of CSR2CSC, obtained as argsort-of-argsort.
func (s *SparseStorage) CSC2CSR() []int64 {
	if s.csc2csr != nil {
		return s.csc2csr
	}
	perm := kernel.For(s.device).Argsort(s.CSR2CSC())
	if cacheEnabled {
		s.csc2csr = perm
	}
	return perm
}

// ---------- presence probes ----------

// HasRowcount reports whether the per-row count is materialized.
func (s *SparseStorage) HasRowcount() bool { return s.rowcount != nil }

// HasRowptr reports whether the CSR offset array is materialized.
func (s *SparseStorage) HasRowptr() bool { return s.rowptr != nil }

// HasColcount reports whether the per-column count is materialized.
func (s *SparseStorage) HasColcount() bool { return s.colcount != nil }

// HasColptr reports whether the CSC offset array is materialized.
func (s *SparseStorage) HasColptr() bool { return s.colptr != nil }

// HasCSR2CSC reports whether the CSR→CSC permutation is materialized.
func (s *SparseStorage) HasCSR2CSC() bool { return s.csr2csc != nil }

// HasCSC2CSR reports whether the CSC→CSR permutation is materialized.
func (s *SparseStorage) HasCSC2CSR() bool { return s.csc2csr != nil }

// ---------- explicit cache control ----------

// CachedKeys lists the derived structures currently materialized, in
// canonical order.
func (s *SparseStorage) CachedKeys() []CacheKey {
	var keys []CacheKey
	for _, k := range cacheKeys {
		if s.cacheSlot(k) != nil {
			keys = append(keys, k)
		}
	}
	return keys
}

// FillCache force-materializes the named derived structures (all six when
// none are named), independent of the process-wide flag. Returns
// ErrUnknownCacheKey for a name outside the six derived structures.
func (s *SparseStorage) FillCache(keys ...CacheKey) error {
	if len(keys) == 0 {
		keys = cacheKeys
	}
	for _, k := range keys {
		switch k {
		case CacheRowcount:
			s.rowcount = s.Rowcount()
		case CacheRowptr:
			s.rowptr = s.Rowptr()
		case CacheColcount:
			s.colcount = s.Colcount()
		case CacheColptr:
			s.colptr = s.Colptr()
		case CacheCSR2CSC:
			s.csr2csc = s.CSR2CSC()
		case CacheCSC2CSR:
			s.csc2csr = s.CSC2CSR()
		default:
			return cooErrorf(string(k), ErrUnknownCacheKey)
		}
	}
	return nil
}

// ClearCache drops the named derived structures (all six when none are
// named), independent of the process-wide flag. Returns ErrUnknownCacheKey
// for an unrecognized name.
func (s *SparseStorage) ClearCache(keys ...CacheKey) error {
	if len(keys) == 0 {
		keys = cacheKeys
	}
	for _, k := range keys {
		switch k {
		case CacheRowcount:
			s.rowcount = nil
		case CacheRowptr:
			s.rowptr = nil
		case CacheColcount:
			s.colcount = nil
		case CacheColptr:
			s.colptr = nil
		case CacheCSR2CSC:
			s.csr2csc = nil
		case CacheCSC2CSR:
			s.csc2csr = nil
		default:
			return cooErrorf(string(k), ErrUnknownCacheKey)
		}
	}
	return nil
}

// cacheSlot maps a key to its field; nil for unknown keys.
func (s *SparseStorage) cacheSlot(k CacheKey) []int64 {
	switch k {
	case CacheRowcount:
		return s.rowcount
	case CacheRowptr:
		return s.rowptr
	case CacheColcount:
		return s.colcount
	case CacheColptr:
		return s.colptr
	case CacheCSR2CSC:
		return s.csr2csc
	case CacheCSC2CSR:
		return s.csc2csr
	default:
		return nil
	}
}

// diff returns the consecutive differences of a pointer array: one count
// per offset pair.
func diff(ptr []int64) []int64 {
	out := make([]int64, len(ptr)-1)
	for i := range out {
		out[i] = ptr[i+1] - ptr[i]
	}
	return out
}
