package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsekit/kernel"
)

// newCoalesceCmd builds the "coalesce" subcommand: merge duplicate
// coordinates of a matrix file and print the resulting triplets.
func newCoalesceCmd() *cobra.Command {
	var reduce string

	cmd := &cobra.Command{
		Use:   "coalesce <matrix.toml>",
		Short: "Merge duplicate coordinates and print the resulting triplets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			op, err := kernel.ParseReduce(reduce)
			if err != nil {
				return err
			}

			s, err := loadMatrix(args[0])
			if err != nil {
				return err
			}

			before := s.NNZ()
			out := s.Coalesce(op)
			logger.Debug("coalesced", "reduce", op, "nnz_before", before, "nnz_after", out.NNZ())

			w := cmd.OutOrStdout()
			for i := 0; i < out.NNZ(); i++ {
				if out.HasValue() {
					fmt.Fprintf(w, "%d\t%d\t%g\n", out.Row()[i], out.Col()[i], out.Value()[i])
				} else {
					fmt.Fprintf(w, "%d\t%d\n", out.Row()[i], out.Col()[i])
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&reduce, "reduce", "r", "sum", "reduction operator: sum, min, max, mul, mean")
	return cmd
}
