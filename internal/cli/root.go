// Package cli implements the datatable command line: loading configuration and datasets,
// setting up logging and hosting the interactive table.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/datatable/internal/config"
	"github.com/rshade/datatable/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger = zerolog.Nop() //nolint:gochecknoglobals // Required for zerolog context integration

// rootOptions holds state shared by all subcommands of one invocation.
type rootOptions struct {
	lookupEnv  func(string) (string, bool)
	configPath string
	cfg        *config.Config
	logResult  *logging.Result

	// interactive reports whether stdout is a terminal; replaced in tests.
	interactive func() bool
}

// NewRootCmd creates the root Cobra command for the datatable CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	opts := &rootOptions{
		lookupEnv:   lookupEnv,
		cfg:         config.New(),
		interactive: func() bool { return isTerminal(os.Stdout) },
	}

	cmd := &cobra.Command{
		Use:           "datatable",
		Short:         "Sortable, paginated terminal tables",
		Long:          "datatable renders YAML and JSON datasets as a sortable table with a numbered paginator.",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			path := config.ResolvePath(opts.configPath, opts.lookupEnv)
			cfg, err := config.Load(path, opts.configPath != "", opts.lookupEnv)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			opts.cfg = cfg

			result := setupLogging(cmd, cfg)
			opts.logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(opts.logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"config file (default $DATATABLE_CONFIG or ~/.datatable/config.yaml)")
	cmd.AddCommand(newShowCmd(opts), newWindowCmd(opts))

	return cmd
}

const rootCmdExample = `  # Browse a dataset interactively
  datatable show --data conversions.yaml

  # Merge two files, sorted by factor, third page of 20
  datatable show --data a.yaml --data b.json --sort factor:desc --page 3 --page-size 20

  # Print a plain table for scripts
  datatable show --data conversions.yaml --plain

  # Inspect the paginator window for page 15 of 300 records
  datatable window --page 15 --records 300 --output json`
