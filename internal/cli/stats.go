package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newStatsCmd builds the "stats" subcommand: normalize a matrix file and
// report its shape, nnz and row/column occupancy from the compressed views.
func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <matrix.toml>",
		Short: "Report shape, nnz and occupancy of a COO matrix file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			logger.Debug("loading matrix", "path", args[0])
			s, err := loadMatrix(args[0])
			if err != nil {
				return err
			}

			rows, cols := s.SparseSize()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "size:       %d x %d\n", rows, cols)
			fmt.Fprintf(out, "nnz:        %d\n", s.NNZ())
			fmt.Fprintf(out, "values:     %v\n", s.HasValue())
			fmt.Fprintf(out, "coalesced:  %v\n", s.IsCoalesced())

			emptyRows, maxRow := occupancy(s.Rowcount())
			emptyCols, maxCol := occupancy(s.Colcount())
			fmt.Fprintf(out, "empty rows: %d (max per row %d)\n", emptyRows, maxRow)
			fmt.Fprintf(out, "empty cols: %d (max per col %d)\n", emptyCols, maxCol)

			logger.Debug("derived structures materialized", "keys", s.CachedKeys())
			return nil
		},
	}
}

// occupancy summarizes a count array: how many buckets are empty and the
// largest bucket.
func occupancy(count []int64) (empty, max int64) {
	for _, c := range count {
		if c == 0 {
			empty++
		}
		if c > max {
			max = c
		}
	}
	return empty, max
}
