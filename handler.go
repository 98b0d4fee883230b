package mcpcore

import (
	"context"
	"io"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler is the transport-facing surface: a dispatch core bridged onto an
// MCP-SDK server, exposed over HTTP, SSE, or stdio.
type Handler struct {
	server      *mcp.Server
	httpHandler http.Handler
	dispatcher  *Dispatcher
	registry    *Registry
}

// GetServer returns the underlying MCP server for advanced usage
func (h *Handler) GetServer() *mcp.Server {
	return h.server
}

// Registry returns the registry backing this handler.
func (h *Handler) Registry() *Registry {
	return h.registry
}

// Dispatcher returns the dispatch core, for callers that bypass the SDK
// transports and route decoded requests directly.
func (h *Handler) Dispatcher() *Dispatcher {
	return h.dispatcher
}

// ServeHTTP implements http.Handler for HTTP transport
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.httpHandler.ServeHTTP(w, r)
}

// ServeSSE implements SSE transport by delegating to ServeHTTP
// The MCP SDK handles the transport differences internally
func (h *Handler) ServeSSE(w http.ResponseWriter, r *http.Request) {
	h.ServeHTTP(w, r)
}

// ServeStdio implements stdio transport for command-line tools. It blocks
// until the client disconnects or ctx is canceled.
func (h *Handler) ServeStdio(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	transport := &mcp.StdioTransport{}
	return h.server.Run(ctx, transport)
}
