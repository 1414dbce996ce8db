// Package mcpserver binds the tool catalog to an MCP stdio transport.
// Framing and protocol handling belong to the SDK; this package only adapts
// requests into dispatches and dispatch outcomes into protocol responses.
package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"hostbridge/internal/dispatch"
)

// New builds an MCP server exposing every tool in the dispatcher's catalog.
// The catalog is fixed at startup, so list-changed notifications are not
// advertised.
func New(name, version string, d *dispatch.Dispatcher) *server.MCPServer {
	s := server.NewMCPServer(name, version,
		server.WithToolCapabilities(false),
	)

	for _, def := range d.ListTools() {
		tool := mcp.NewToolWithRawSchema(def.Name, def.Description, def.InputSchema.Raw)
		s.AddTool(tool, callHandler(d, def.Name))
	}
	return s
}

// callHandler adapts one tool's MCP requests to dispatcher calls.
// Dispatch-level failures return as errors, which the SDK converts into
// protocol error responses; successful results pass through as text content.
func callHandler(d *dispatch.Dispatcher, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := req.Params.Arguments.(map[string]any)
		res, err := d.CallTool(ctx, name, args)
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(res.Content[0].Text), nil
	}
}

// ServeStdio serves s over stdin/stdout until the client disconnects.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
