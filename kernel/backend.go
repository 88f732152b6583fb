// SPDX-License-Identifier: MIT

// Package kernel: the Backend contract and the Device registry.
// This file defines ONLY the contract types (Device, Reduce, Backend) and the
// runtime strategy lookup. The CPU implementation lives in cpu.go; decorators
// in counting.go.

package kernel

import (
	"errors"
	"fmt"
)

// Device tags where a storage instance's arrays reside. It is a small closed
// set: primitives are selected by inspecting the tag, not by build flags.
type Device uint8

const (
	// CPU marks host-resident arrays; served by the built-in implementation.
	CPU Device = iota

	// Accel marks accelerator-resident arrays; served by a registered
	// implementation, falling back to CPU when none is installed.
	Accel
)

// String returns the canonical lower-case name of the device tag.
func (d Device) String() string {
	switch d {
	case CPU:
		return "cpu"
	case Accel:
		return "accel"
	default:
		return fmt.Sprintf("device(%d)", uint8(d))
	}
}

// Reduce selects the combining operator of a segmented reduction.
// The zero value is Sum, so callers may pass a zero Reduce for the default.
type Reduce uint8

const (
	// Sum adds all values of a segment (the default).
	Sum Reduce = iota
	// Min keeps the smallest value of a segment.
	Min
	// Max keeps the largest value of a segment.
	Max
	// Mul multiplies all values of a segment.
	Mul
	// Mean averages the values of a segment.
	Mean
)

// reduceNames maps Reduce constants to their canonical names, in order.
var reduceNames = [...]string{"sum", "min", "max", "mul", "mean"}

// ErrUnknownReduce is returned by ParseReduce for an unrecognized name.
var ErrUnknownReduce = errors.New("kernel: unknown reduce operator")

// String returns the canonical lower-case name of the operator.
func (r Reduce) String() string {
	if int(r) < len(reduceNames) {
		return reduceNames[r]
	}
	return fmt.Sprintf("reduce(%d)", uint8(r))
}

// ParseReduce maps a canonical name ("sum", "min", "max", "mul", "mean")
// back to its Reduce constant. Returns ErrUnknownReduce otherwise.
func ParseReduce(name string) (Reduce, error) {
	for i, n := range reduceNames {
		if n == name {
			return Reduce(i), nil
		}
	}
	return Sum, fmt.Errorf("%q: %w", name, ErrUnknownReduce)
}

// Backend is the set of numeric primitives sparse storage builds on.
// Every method allocates and returns fresh output; inputs are read-only.
type Backend interface {
	// Argsort returns the stable sort permutation of keys: applying the
	// returned permutation to keys yields a non-decreasing sequence, and
	// equal keys keep their original relative order.
	// Complexity: O(n log n) time, O(n) space.
	Argsort(keys []int64) []int64

	// CumSum returns the exclusive cumulative sum of src: a slice of
	// length len(src)+1 with out[0] = 0 and out[i+1] = out[i] + src[i].
	// Complexity: O(n).
	CumSum(src []int64) []int64

	// ScatterCount counts occurrences per bucket: out[b] is the number of
	// ids equal to b. ids need not be sorted; out has length buckets.
	// Complexity: O(n + buckets).
	ScatterCount(ids []int64, buckets int) []int64

	// SegmentReduce combines values that share a group id using op,
	// producing one output per group. Group ids are non-negative, less
	// than groups, and non-decreasing (segments are contiguous runs).
	// Complexity: O(n + groups).
	SegmentReduce(groupID []int64, values []float64, groups int, op Reduce) []float64

	// Rowptr builds the compressed offset array for a sorted bucket-id
	// sequence: out has length buckets+1, out[0] = 0, out[buckets] =
	// len(sorted), and out[b+1]-out[b] is the number of ids equal to b.
	// The input MUST be non-decreasing; behavior is undefined otherwise.
	// Complexity: O(n + buckets).
	Rowptr(sorted []int64, buckets int) []int64
}

// backends holds the per-device strategy table. CPU is always present.
// The table is plain shared state: registration is expected during program
// initialization, before concurrent use.
var backends = map[Device]Backend{CPU: cpuBackend{}}

// Register installs b as the implementation serving device d.
// Registering the CPU slot replaces the built-in implementation, which is
// mainly useful for instrumentation (see Counting).
func Register(d Device, b Backend) {
	backends[d] = b
}

// For resolves the Backend serving device d. An unregistered device falls
// back to the CPU implementation rather than failing, so structure-only
// workflows keep working before an accelerator backend is wired in.
func For(d Device) Backend {
	if b, ok := backends[d]; ok {
		return b
	}
	return backends[CPU]
}
