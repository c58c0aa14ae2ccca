// Package mcp exposes memoria search and retrieval to agents as Model
// Context Protocol tools, backed by the HTTP API.
package mcp

import (
	"context"
	"fmt"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/memoria/internal/version"
	memoria "github.com/kailas-cloud/memoria/pkg/sdk"
)

// ServerName is the implementation name announced to MCP clients.
const ServerName = "memoria-mcp"

// Tool names.
const (
	ToolSearchDocuments = "search_documents"
	ToolGetDocument     = "get_document"
)

// Server is the MCP tool bridge.
type Server struct {
	api    API
	logger *zap.Logger
	server *gomcp.Server
}

// New creates a bridge with both tools registered.
func New(api API, logger *zap.Logger) (*Server, error) {
	s := &Server{
		api:    api,
		logger: logger,
		server: gomcp.NewServer(&gomcp.Implementation{Name: ServerName, Version: version.Version}, nil),
	}

	searchIn, err := searchSchema()
	if err != nil {
		return nil, err
	}
	getIn, err := getDocumentSchema()
	if err != nil {
		return nil, err
	}

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:  ToolSearchDocuments,
		Title: "Search memoria documents",
		Description: "Searches your memoria documents by slug, title, and tags. " +
			"Returns up to 10 results.",
		InputSchema: searchIn,
	}, s.searchDocuments)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:  ToolGetDocument,
		Title: "Retrieve memoria document",
		Description: "Fetches the body of a memoria document using its compound slug handle " +
			"(e.g. design-doc-abc123). Bodies are truncated at max_bytes, 64 KB by default.",
		InputSchema: getIn,
	}, s.getDocument)

	return s, nil
}

// Run serves the tools over t until the client disconnects or ctx is done.
func (s *Server) Run(ctx context.Context, t gomcp.Transport) error {
	if err := s.server.Run(ctx, t); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}

// Connect starts a session over t without blocking.
func (s *Server) Connect(ctx context.Context, t gomcp.Transport) (*gomcp.ServerSession, error) {
	return s.server.Connect(ctx, t, nil)
}

func (s *Server) searchDocuments(
	ctx context.Context, _ *gomcp.CallToolRequest, args SearchArgs,
) (*gomcp.CallToolResult, any, error) {
	s.logger.Debug("Executing search_documents",
		zap.String("query", args.Query),
		zap.Int("limit", args.Limit),
		zap.String("sort", args.Sort),
	)

	results, err := s.api.Search(ctx, args.Query, memoria.SearchOptions{
		Limit: args.Limit,
		Sort:  memoria.SortOrder(args.Sort),
	})
	if err != nil {
		s.logger.Error("search_documents failed", zap.Error(err))
		return errorResult("Search failed: " + err.Error()), nil, nil
	}

	return &gomcp.CallToolResult{
		Content:           []gomcp.Content{&gomcp.TextContent{Text: formatSearchResults(results)}},
		StructuredContent: map[string]any{"results": results},
	}, nil, nil
}

func (s *Server) getDocument(
	ctx context.Context, _ *gomcp.CallToolRequest, args GetDocumentArgs,
) (*gomcp.CallToolResult, any, error) {
	s.logger.Debug("Executing get_document", zap.String("doc_handle", args.DocHandle))

	doc, err := s.api.GetDocument(ctx, args.DocHandle, memoria.GetOptions{MaxBytes: args.MaxBytes})
	if err != nil {
		s.logger.Error("get_document failed", zap.String("doc_handle", args.DocHandle), zap.Error(err))
		return errorResult("Failed to fetch document: " + err.Error()), nil, nil
	}

	return &gomcp.CallToolResult{
		Content:           []gomcp.Content{&gomcp.TextContent{Text: formatDocument(args.DocHandle, doc)}},
		StructuredContent: map[string]any{"document": doc},
	}, nil, nil
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}
