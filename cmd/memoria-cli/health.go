package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func healthCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show API health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			hs, err := client.Health(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.json {
				return writeJSON(out, hs)
			}
			status := okColor.Sprint(hs.Status)
			if hs.Status != "ok" {
				status = errorColor.Sprint(hs.Status)
			}
			fmt.Fprintf(out, "status: %s  %s\n", status, faintColor.Sprint("version "+hs.Version))

			names := make([]string, 0, len(hs.Checks))
			for name := range hs.Checks {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(out, "  %-10s %s\n", name, hs.Checks[name])
			}
			if hs.Status != "ok" {
				return fmt.Errorf("service is %s", hs.Status)
			}
			return nil
		},
	}
}
