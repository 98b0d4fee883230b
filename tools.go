package mcpcore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// New builds a Handler from the given options: definitions are registered on
// the registry, a dispatcher is created over it, and every tool and resource
// is bridged onto an MCP-SDK server for stdio/HTTP transport.
func New(opts ...Option) (*Handler, error) {
	cfg := &handlerConfig{
		name:    "mcp-server",
		version: "1.0.0",
	}

	// Apply all options
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	registry := cfg.registry
	if registry == nil {
		registry = NewRegistry()
	}
	for _, def := range cfg.tools {
		if err := registry.RegisterTool(def); err != nil {
			return nil, err
		}
	}
	for _, def := range cfg.resources {
		if err := registry.RegisterResource(def); err != nil {
			return nil, err
		}
	}

	dispatcher, err := NewDispatcher(registry, cfg.logger)
	if err != nil {
		return nil, err
	}

	// Create a new MCP server if not provided
	server := cfg.server
	if server == nil {
		impl := &mcp.Implementation{
			Name:    cfg.name,
			Version: cfg.version,
		}
		server = mcp.NewServer(impl, nil)
	}

	// Bridge registry contents onto the SDK server. The dispatcher owns
	// validation and routing; the SDK owns framing and sessions.
	for _, def := range registry.Tools() {
		addSDKTool(server, dispatcher, def)
	}
	for _, def := range registry.Resources() {
		addSDKResource(server, dispatcher, def)
	}
	for _, def := range registry.ResourceTemplates() {
		addSDKResourceTemplate(server, dispatcher, def)
	}

	// Create transport handler
	httpHandler := mcp.NewStreamableHTTPHandler(
		func(*http.Request) *mcp.Server { return server },
		nil,
	)

	return &Handler{
		server:      server,
		httpHandler: httpHandler,
		dispatcher:  dispatcher,
		registry:    registry,
	}, nil
}

// addSDKTool registers one tool on the SDK server with an explicit schema
// and a handler that funnels the call through the dispatcher.
func addSDKTool(server *mcp.Server, d *Dispatcher, def ToolDef) {
	tool := &mcp.Tool{
		Name:        def.Name,
		Description: def.Description,
		InputSchema: def.InputSchema.JSONSchema(),
	}
	server.AddTool(tool, sdkToolHandler(d, def.Name))
}

// sdkToolHandler adapts the SDK's tool handler signature to a dispatch call.
// Dispatch failures come back as in-band results with IsError set, never as
// protocol errors, so the client always sees the structured message.
func sdkToolHandler(d *Dispatcher, name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := decodeArguments(req.Params.Arguments)
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("failed to decode arguments: %v", err)}},
				IsError: true,
			}, nil
		}

		res := d.CallTool(ctx, name, args)
		return toSDKResult(res), nil
	}
}

// decodeArguments normalizes the SDK's argument payload into the map the
// dispatcher validates. A round-trip through JSON keeps this independent of
// the concrete type the SDK hands over.
func decodeArguments(raw any) (map[string]any, error) {
	if raw == nil {
		return map[string]any{}, nil
	}
	var data []byte
	switch v := raw.(type) {
	case json.RawMessage:
		data = v
	case []byte:
		data = v
	default:
		var err error
		if data, err = json.Marshal(v); err != nil {
			return nil, err
		}
	}
	if len(data) == 0 || string(data) == "null" {
		return map[string]any{}, nil
	}
	args := make(map[string]any)
	if err := json.Unmarshal(data, &args); err != nil {
		return nil, err
	}
	return args, nil
}

// toSDKResult converts a dispatch Result into the SDK's wire result shape.
func toSDKResult(res Result) *mcp.CallToolResult {
	if res.Failure != nil {
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: res.Failure.Error()}},
			IsError: true,
		}
	}

	content := make([]mcp.Content, 0, len(res.Content))
	for _, c := range res.Content {
		switch c.Type {
		case ContentJSON:
			data, err := json.Marshal(c.JSON)
			if err != nil {
				return &mcp.CallToolResult{
					Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("failed to encode content: %v", err)}},
					IsError: true,
				}
			}
			content = append(content, &mcp.TextContent{Text: string(data)})
		default:
			content = append(content, &mcp.TextContent{Text: c.Text})
		}
	}
	return &mcp.CallToolResult{Content: content}
}
