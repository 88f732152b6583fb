package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version, injected via ldflags
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version.
// Typically called by the main package with values injected at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the sparsekit CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands (stats,
// coalesce), configures logging based on the --verbose flag, and executes
// the command tree. The logger is attached to the context and accessible to
// all commands via loggerFromContext.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "sparsekit",
		Short:        "sparsekit inspects sparse COO matrices and their CSR/CSC views",
		Long:         `sparsekit is a CLI for inspecting sparse coordinate matrices: it normalizes a COO description into row-major order, derives compressed row/column views, and coalesces duplicate coordinates.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("sparsekit %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newStatsCmd())
	root.AddCommand(newCoalesceCmd())

	return root.ExecuteContext(context.Background())
}
