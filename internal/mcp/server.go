// ABOUTME: MCP server setup for the spoons wellness tracker.
// ABOUTME: Wraps MCP server with the persistence gateway and an injectable clock.
package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/spoons/internal/gateway"
	"github.com/harperreed/spoons/internal/models"
)

// Server wraps the MCP server with gateway access.
type Server struct {
	mcpServer *mcp.Server
	gw        *gateway.Gateway
	now       func() time.Time
}

// NewServer creates a new MCP server over the given gateway.
func NewServer(gw *gateway.Gateway) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "spoons",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		gw:        gw,
		now:       time.Now,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) today() string {
	return models.FormatDate(s.now())
}
