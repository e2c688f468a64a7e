package cli

import (
	"github.com/spf13/cobra"

	"github.com/xfetch/xfetch/internal/config"
)

func newUserCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "user USERNAME",
		Short: "Get recent tweets from a user's timeline",
		Example: `  xfetch user golang
  xfetch user @golang -n 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()
			svc, err := newService(cmd, cfg)
			if err != nil {
				return err
			}

			username := args[0]
			// A pasted profile URL works too.
			if extracted := config.ExtractUsernameFromURL(username); extracted != "" {
				username = extracted
			}

			result, err := svc.User(cmd.Context(), username, resolveMaxResults(cmd, cfg))
			if err != nil {
				return err
			}
			return renderResult(cmd, result)
		},
	}
}
