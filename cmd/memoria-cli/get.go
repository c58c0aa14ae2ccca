package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/memoria/internal/mcp"
	memoria "github.com/kailas-cloud/memoria/pkg/sdk"
)

func getCmd(opts *globalOptions) *cobra.Command {
	var (
		maxBytes int
		raw      bool
	)
	cmd := &cobra.Command{
		Use:   "get <handle>",
		Short: "Print a document by its slug-suffix handle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			doc, err := client.GetDocument(cmd.Context(), args[0], memoria.GetOptions{MaxBytes: maxBytes})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case opts.json:
				return writeJSON(out, doc)
			case raw:
				_, err = fmt.Fprint(out, doc.Body)
				return err
			}

			fmt.Fprintf(out, "%s  %s\n", handleColor.Sprint(args[0]),
				faintColor.Sprintf("updated %s, %s", formatTime(doc.Updated), mcp.FormatBytes(doc.FullSize)))
			if doc.IsTruncated {
				fmt.Fprintln(out, warnColor.Sprintf("truncated to %s, use --max-bytes to read more",
					mcp.FormatBytes(int64(len(doc.Body)))))
			}
			fmt.Fprintln(out)
			if doc.Frontmatter != "" {
				fmt.Fprintln(out, faintColor.Sprint("---\n"+doc.Frontmatter+"\n---"))
			}
			_, err = fmt.Fprint(out, doc.Body)
			return err
		},
	}
	cmd.Flags().IntVar(&maxBytes, "max-bytes", 0, "truncate the body to this many bytes (default 64 KB)")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the body only")
	return cmd
}
