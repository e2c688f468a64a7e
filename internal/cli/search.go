package cli

import (
	"github.com/spf13/cobra"

	"github.com/xfetch/xfetch/internal/config"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY",
		Short: "Search tweets by keywords, hashtags, or mentions",
		Example: `  xfetch search "golang generics"
  xfetch search "#gophercon" -n 50 --format summary`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()
			svc, err := newService(cmd, cfg)
			if err != nil {
				return err
			}

			result, err := svc.Search(cmd.Context(), args[0], resolveMaxResults(cmd, cfg))
			if err != nil {
				return err
			}
			return renderResult(cmd, result)
		},
	}
}
