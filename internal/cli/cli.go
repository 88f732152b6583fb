// Package cli implements the sparsekit command-line interface.
//
// This package provides small inspection commands over COO matrix files:
// loading a coordinate description from TOML, printing the CSR/CSC view
// statistics, and coalescing duplicate coordinates. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
//   - stats: normalize a matrix file and report shape, nnz and occupancy
//   - coalesce: merge duplicate coordinates under a chosen reduction
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// ctxKey is the private context key type for the logger.
type ctxKey struct{}

// newLogger creates a logger writing to w at the given level with
// "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// withLogger attaches l to ctx.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// loggerFromContext retrieves the logger attached by withLogger, falling
// back to the package default so commands never nil-check.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
