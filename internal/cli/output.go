package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xfetch/xfetch/internal/fetch"
)

var modeLabels = map[string]string{
	"search": "Search Results",
	"user":   "User Tweets",
	"tweet":  "Tweet Details",
}

// renderResult writes a fetch result in the requested format, to stdout or
// the --output file, and reports credit usage on stderr.
func renderResult(cmd *cobra.Command, result *fetch.Result) error {
	format, _ := cmd.Flags().GetString("format")

	var output string
	switch format {
	case "json":
		data, err := json.MarshalIndent(result.Set, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		output = string(data)
	case "summary":
		output = formatSummary(result.Set)
	default:
		return fmt.Errorf("unknown format %q (want json or summary)", format)
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(output+"\n"), 0o600); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		cmd.PrintErrf("Results saved to: %s\n", outputPath)
	} else {
		cmd.Println(output)
	}

	if result.FromCache {
		cmd.PrintErrln("[cached] no Apify credits used")
	} else {
		cmd.PrintErrln("[Apify credits used - check https://console.apify.com/billing]")
	}
	return nil
}

// formatSummary renders a result set as a human-readable report.
func formatSummary(set *fetch.ResultSet) string {
	label := modeLabels[set.Mode]
	if label == "" {
		label = "Results"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "=== X/Twitter %s ===\n", label)
	fmt.Fprintf(&b, "Query: %s\n", set.Query)
	fmt.Fprintf(&b, "Fetched: %s\n", set.FetchedAt)
	fmt.Fprintf(&b, "Results: %d tweets\n", set.Count)

	for _, tweet := range set.Tweets {
		b.WriteString("\n---\n")
		fmt.Fprintf(&b, "@%s", tweet.Author)
		if tweet.AuthorName != "" {
			fmt.Fprintf(&b, " (%s)", tweet.AuthorName)
		}
		b.WriteString("\n")
		if tweet.CreatedAt != "" {
			fmt.Fprintf(&b, "%s\n", tweet.CreatedAt)
		}
		fmt.Fprintf(&b, "%s\n", tweet.Text)
		fmt.Fprintf(&b, "[Likes: %d | RTs: %d | Replies: %d]\n", tweet.Likes, tweet.Retweets, tweet.Replies)
		if tweet.URL != "" {
			fmt.Fprintf(&b, "%s\n", tweet.URL)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
