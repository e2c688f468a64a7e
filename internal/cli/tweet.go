package cli

import (
	"github.com/spf13/cobra"

	"github.com/xfetch/xfetch/internal/config"
)

func newTweetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tweet URL",
		Short: "Get a specific tweet and its replies by URL or ID",
		Example: `  xfetch tweet https://x.com/golang/status/1234567890123
  xfetch tweet 1234567890123`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()
			svc, err := newService(cmd, cfg)
			if err != nil {
				return err
			}

			result, err := svc.Tweet(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return renderResult(cmd, result)
		},
	}
}
