package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/datatable/internal/config"
	"github.com/rshade/datatable/internal/logging"
)

// setupLogging configures logging from the config file, environment and CLI flags, and stores
// a trace-tagged logger in the command context.
func setupLogging(cmd *cobra.Command, cfg *config.Config) logging.Result {
	loggingCfg := cfg.Logging

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.File = ""
	}

	result := logging.NewLogger(loggingCfg.ToLoggingConfig(), cmd.ErrOrStderr())
	if result.FallbackUsed {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not open log file, logging to stderr: %s\n",
			result.FallbackReason)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithTraceID(ctx, logging.ComponentLogger(result.Logger, "cli"))
	logger = *logging.FromContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle.
func cleanupLogging(logResult *logging.Result) error {
	if logResult == nil {
		return nil
	}
	return logResult.Close()
}
