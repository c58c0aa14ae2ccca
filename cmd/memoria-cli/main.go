// Command memoria-cli searches and reads memoria documents from a terminal,
// checks frontmatter locally, and issues personal access tokens.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kailas-cloud/memoria/internal/config"
	"github.com/kailas-cloud/memoria/internal/version"
	memoria "github.com/kailas-cloud/memoria/pkg/sdk"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorColor.Sprint("error:"), err)
		os.Exit(1)
	}
}

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	apiURL string
	token  string
	debug  bool
	json   bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	apiURL := os.Getenv("MEMORIA_API_URL")
	if apiURL == "" {
		apiURL = config.DefaultAPIURL
	}

	root := &cobra.Command{
		Use:           "memoria-cli",
		Short:         "memoria - search and read your knowledge base",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.apiURL, "api-url", apiURL, "memoria API root (env MEMORIA_API_URL)")
	root.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("MEMORIA_PAT"), "bearer token (env MEMORIA_PAT)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log requests to stderr")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "output as JSON")

	root.AddCommand(searchCmd(opts))
	root.AddCommand(getCmd(opts))
	root.AddCommand(healthCmd(opts))
	root.AddCommand(frontmatterCmd(opts))
	root.AddCommand(tokenCmd(opts))

	return root
}

func (o *globalOptions) client() (*memoria.Client, error) {
	clientOpts := []memoria.Option{
		memoria.WithBaseURL(o.apiURL),
		memoria.WithToken(o.token),
	}
	if o.debug {
		clientOpts = append(clientOpts, memoria.WithLogger(
			slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})),
		))
	}
	client, err := memoria.New(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return client, nil
}

// Terminal styles.
var (
	errorColor  = color.New(color.FgRed, color.Bold)
	okColor     = color.New(color.FgGreen, color.Bold)
	warnColor   = color.New(color.FgYellow)
	titleColor  = color.New(color.Bold)
	handleColor = color.New(color.FgCyan)
	faintColor  = color.New(color.Faint)
)
