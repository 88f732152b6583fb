// Package kernel defines the numeric primitives that sparse storage delegates
// its heavy lifting to: stable argsort, exclusive cumulative sum, segmented
// reduction, bucket counting and compressed-pointer construction.
//
// The package provides:
//
//   - Backend — the primitive contract consumed by package coo.
//   - A pure-Go CPU implementation, always available.
//   - A registry keyed by Device so an accelerator-resident implementation can
//     be installed at runtime; selection happens at the call site from the
//     residency of the data, never at compile time.
//   - Counting — a Backend decorator that counts primitive invocations, used
//     to observe memoization behavior in tests.
//
// All primitives are pure functions of their inputs: they never retain or
// mutate argument slices and always allocate fresh output. Implementations
// may parallelize internally; every call is synchronous for the caller.
package kernel
