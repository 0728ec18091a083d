// ABOUTME: MCP server for the workout tracker.
// ABOUTME: Exposes the catalog, history, and session engine over stdio.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/flittly/gohard/internal/storage"
)

// Server exposes the workout core over the Model Context Protocol.
type Server struct {
	mcpServer *mcp.Server
	store     storage.Store
}

// NewServer builds a fully registered MCP server backed by the given
// history store. Registration cannot fail, so there is no error return.
func NewServer(store storage.Store) *Server {
	s := &Server{
		mcpServer: mcp.NewServer(
			&mcp.Implementation{
				Name:    "gohard",
				Version: "1.0.0",
			},
			nil,
		),
		store: store,
	}
	s.registerTools()
	s.registerResources()
	return s
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
