package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/memoria/internal/mcp"
	memoria "github.com/kailas-cloud/memoria/pkg/sdk"
)

func searchCmd(opts *globalOptions) *cobra.Command {
	var (
		limit int
		sort  string
	)
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search your documents by slug, title and tags",
		Long: `Search your documents. Every query word must match the slug, title or a tag.

Examples:
  memoria-cli search "design review"
  memoria-cli search roadmap --sort recency --limit 3
  memoria-cli search notes --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			results, err := client.Search(cmd.Context(), query, memoria.SearchOptions{
				Limit: limit,
				Sort:  memoria.SortOrder(sort),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.json {
				return writeJSON(out, results)
			}
			if len(results) == 0 {
				fmt.Fprintln(out, faintColor.Sprint("No documents matched your search."))
				return nil
			}
			for i, r := range results {
				fmt.Fprintf(out, "%2d. %s  %s\n", i+1, titleColor.Sprint(r.Title), handleColor.Sprint(r.DocHandle))
				fmt.Fprintf(out, "    %s\n", faintColor.Sprintf("updated %s, %s", formatTime(r.Updated), mcp.FormatBytes(r.ApproxSize)))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum results, 1-10 (default 5)")
	cmd.Flags().StringVarP(&sort, "sort", "s", "", "relevance or recency (default relevance)")
	return cmd
}
