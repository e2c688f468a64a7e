// Package cli wires the xfetch Cobra commands: the three fetch modes
// (search, user, tweet) and the cache management surface.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/xfetch/xfetch/internal/config"
	"github.com/xfetch/xfetch/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger

// NewRootCmd creates the root Cobra command for the xfetch CLI. It wires
// up logging, the invocation trace ID, and the subcommands.
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "xfetch",
		Short:   "Fetch X/Twitter data via the Apify API with local caching",
		Long:    "xfetch fetches tweets through an Apify scraping actor and caches results\n" +
			"on disk so repeated requests don't spend API credits.",
		Version: version,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			maxResults, _ := cmd.Flags().GetInt("max-results")
			if maxResults < 0 {
				return errNegativeMaxResults
			}

			setupLogging(cmd)
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().Bool("no-cache", false, "bypass the cache (always fetch fresh)")
	cmd.PersistentFlags().StringP("format", "f", "json", "output format: json or summary")
	cmd.PersistentFlags().StringP("output", "o", "", "output file path (default: stdout)")
	cmd.PersistentFlags().IntP("max-results", "n", 0, "maximum results to fetch (0 = use config default)")

	cmd.AddCommand(newSearchCmd(), newUserCmd(), newTweetCmd(), newCacheCmd())
	return cmd
}

// setupLogging builds the logger from config and flags and attaches it,
// plus a trace ID, to the command context.
func setupLogging(cmd *cobra.Command) {
	cfg := config.New()
	loggingCfg := cfg.Logging

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
	}

	base := logging.New(loggingCfg)
	logger = logging.ComponentLogger(base, "cli")

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().
		Str("command", cmd.Name()).
		Str("trace_id", traceID).
		Msg("command started")
}

const rootCmdExample = `  # Search tweets by keywords, hashtags, or mentions
  xfetch search "golang generics"

  # Get recent tweets from a user
  xfetch user golang

  # Get a specific tweet (and replies) by URL
  xfetch tweet https://x.com/golang/status/1234567890123

  # Human-readable output instead of JSON
  xfetch search "golang" --format summary

  # Show cache statistics
  xfetch cache stats

  # Browse cached results interactively
  xfetch cache browse

  # Clear all cached results
  xfetch cache clear`
