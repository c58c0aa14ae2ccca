// Command memoria-mcp serves memoria search and retrieval as MCP tools over
// stdio. Stdout carries the protocol; logs go to stderr.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/memoria/internal/config"
	logpkg "github.com/kailas-cloud/memoria/internal/logger"
	"github.com/kailas-cloud/memoria/internal/mcp"
	"github.com/kailas-cloud/memoria/internal/version"
	memoria "github.com/kailas-cloud/memoria/pkg/sdk"
)

const verifyTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "[memoria-mcp]", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadMCP(os.Getenv)
	if err != nil {
		return err
	}

	logger, err := logpkg.NewStderrLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting memoria MCP server",
		zap.String("version", version.Version),
		zap.String("api_url", cfg.APIURL),
	)

	client, err := memoria.New(memoria.WithBaseURL(cfg.APIURL), memoria.WithToken(cfg.Token))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	verifyCtx, cancel := context.WithTimeout(ctx, verifyTimeout)
	err = client.Ping(verifyCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("verify memoria connectivity: %w", err)
	}
	logger.Debug("Verified memoria connectivity")

	server, err := mcp.New(client, logger)
	if err != nil {
		return err
	}

	logger.Info("Memoria MCP server connected, waiting for requests")
	if err := server.Run(ctx, &gomcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		return err
	}
	logger.Info("Memoria MCP server stopped")
	return nil
}
