package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/memoria/internal/config"
	dbRedis "github.com/kailas-cloud/memoria/internal/db/redis"
	logpkg "github.com/kailas-cloud/memoria/internal/logger"
	tokenrepo "github.com/kailas-cloud/memoria/internal/repository/token"
)

func tokenCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage personal access tokens",
	}
	cmd.AddCommand(tokenIssueCmd(opts))
	return cmd
}

// tokenIssueCmd writes directly to the database named by the server config
// (ENV selects config/<env>.yaml), so the first token can be issued before
// any API credential exists.
func tokenIssueCmd(opts *globalOptions) *cobra.Command {
	var owner, name string
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a personal access token for an owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env := config.GetEnv()
			cfg, err := config.Load(env)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger := zap.NewNop()
			if opts.debug {
				if logger, err = logpkg.NewStderrLogger(true); err != nil {
					return fmt.Errorf("create logger: %w", err)
				}
			}

			store, err := dbRedis.NewStore(dbRedis.Config{
				Addrs:    cfg.Database.Addrs,
				Password: cfg.Database.Password,
			})
			if err != nil {
				return fmt.Errorf("create database store: %w", err)
			}
			defer store.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.Database.ReadinessTimeout)*time.Second)
			defer cancel()
			if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
				return fmt.Errorf("database not ready: %w", err)
			}

			repo := tokenrepo.New(store, cfg.Storage.KeyPrefix, nil, logger)
			issued, err := repo.Issue(ctx, owner, name)
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}

			out := cmd.OutOrStdout()
			if opts.json {
				return writeJSON(out, map[string]any{
					"token":      issued.Plaintext,
					"owner":      owner,
					"name":       issued.Name,
					"created_at": issued.CreatedAt,
				})
			}
			fmt.Fprintf(out, "%s token for %s\n", okColor.Sprint("Issued"), titleColor.Sprint(owner))
			fmt.Fprintln(out, handleColor.Sprint(issued.Plaintext))
			fmt.Fprintln(out, warnColor.Sprint("Store it now: it cannot be shown again."))
			return nil
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "owner the token acts as")
	cmd.Flags().StringVar(&name, "name", "", "label for the token")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}
