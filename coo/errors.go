// SPDX-License-Identifier: MIT
// Package coo: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the coo
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. Structural violations are contract violations detected
// at construction or mutation boundaries: fail-fast, no retries, nothing to
// recover at this layer.

package coo

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "coo: ..." for consistency and to allow easy
// grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("tag: %w", ErrX) so
// callers still match with errors.Is (validators.go centralizes this).

var (
	// ErrIndexMismatch is returned when the row and column coordinate
	// sequences do not have equal length.
	ErrIndexMismatch = errors.New("coo: row/col length mismatch")

	// ErrNegativeCoordinate is returned when a coordinate is negative.
	ErrNegativeCoordinate = errors.New("coo: negative coordinate")

	// ErrCoordinateOutOfRange is returned when a coordinate lies outside
	// the declared sparse size.
	ErrCoordinateOutOfRange = errors.New("coo: coordinate out of range")

	// ErrEmptyIndex is returned when the index is empty and no explicit
	// sparse size was supplied; the extent would be undefined.
	ErrEmptyIndex = errors.New("coo: empty index requires explicit sparse size")

	// ErrBadShape is returned for non-positive matrix dimensions.
	ErrBadShape = errors.New("coo: invalid shape")

	// ErrValueMismatch is returned when the value sequence length differs
	// from the number of stored coordinates.
	ErrValueMismatch = errors.New("coo: value length mismatch")

	// ErrCacheShape is returned when a supplied derived array violates its
	// required length; the wrapping tag names the offending field.
	ErrCacheShape = errors.New("coo: derived array has wrong shape")

	// ErrUnknownCacheKey is returned by FillCache/ClearCache for a key
	// outside the six derived-structure names.
	ErrUnknownCacheKey = errors.New("coo: unknown cache key")
)
