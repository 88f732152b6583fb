// SPDX-License-Identifier: MIT

// Package kernel: instrumentation decorator for the Backend contract.

package kernel

// Counting wraps a Backend and counts how often each primitive runs.
// It exists so callers (and this module's own tests) can verify memoization
// behavior: with caching disabled, repeated derived-structure reads must
// show repeated primitive invocations. Counters are plain ints with no
// synchronization; observe them from a single goroutine.
type Counting struct {
	// Inner is the decorated implementation; nil means the CPU backend.
	Inner Backend

	// Per-primitive invocation counters.
	Argsorts       int
	CumSums        int
	ScatterCounts  int
	SegmentReduces int
	Rowptrs        int
}

// inner resolves the decorated backend, defaulting to CPU.
func (c *Counting) inner() Backend {
	if c.Inner != nil {
		return c.Inner
	}
	return For(CPU)
}

// Reset zeroes all counters.
func (c *Counting) Reset() {
	c.Argsorts, c.CumSums, c.ScatterCounts, c.SegmentReduces, c.Rowptrs = 0, 0, 0, 0, 0
}

// Total reports the sum of all counters.
func (c *Counting) Total() int {
	return c.Argsorts + c.CumSums + c.ScatterCounts + c.SegmentReduces + c.Rowptrs
}

func (c *Counting) Argsort(keys []int64) []int64 {
	c.Argsorts++
	return c.inner().Argsort(keys)
}

func (c *Counting) CumSum(src []int64) []int64 {
	c.CumSums++
	return c.inner().CumSum(src)
}

func (c *Counting) ScatterCount(ids []int64, buckets int) []int64 {
	c.ScatterCounts++
	return c.inner().ScatterCount(ids, buckets)
}

func (c *Counting) SegmentReduce(groupID []int64, values []float64, groups int, op Reduce) []float64 {
	c.SegmentReduces++
	return c.inner().SegmentReduce(groupID, values, groups, op)
}

func (c *Counting) Rowptr(sorted []int64, buckets int) []int64 {
	c.Rowptrs++
	return c.inner().Rowptr(sorted, buckets)
}
