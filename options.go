package mcpcore

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/phuslu/log"
)

// Option is a functional option for configuring handlers
type Option func(*handlerConfig) error

// handlerConfig holds the configuration built by options
type handlerConfig struct {
	name      string
	version   string
	registry  *Registry
	server    *mcp.Server // The MCP-SDK server instance
	logger    *log.Logger
	tools     []ToolDef
	resources []ResourceDef
}

// WithName sets the server name
func WithName(name string) Option {
	return func(cfg *handlerConfig) error {
		if name == "" {
			return ErrEmptyName
		}
		cfg.name = name
		return nil
	}
}

// WithVersion sets the server version
func WithVersion(version string) Option {
	return func(cfg *handlerConfig) error {
		if version == "" {
			return ErrEmptyVersion
		}
		cfg.version = version
		return nil
	}
}

// WithTool adds a tool definition. Name uniqueness and schema validity are
// checked when the definition is registered during New.
func WithTool(def ToolDef) Option {
	return func(cfg *handlerConfig) error {
		if def.Name == "" {
			return ErrEmptyToolName
		}
		if def.Handler == nil {
			return ErrNilHandler
		}
		cfg.tools = append(cfg.tools, def)
		return nil
	}
}

// WithResource adds a resource definition, literal or templated.
func WithResource(def ResourceDef) Option {
	return func(cfg *handlerConfig) error {
		if def.URIPattern == "" {
			return ErrEmptyURIPattern
		}
		if def.Handler == nil {
			return ErrNilHandler
		}
		cfg.resources = append(cfg.resources, def)
		return nil
	}
}

// WithRegistry injects a pre-built registry. Definitions added via WithTool
// and WithResource are registered on top of it.
func WithRegistry(registry *Registry) Option {
	return func(cfg *handlerConfig) error {
		if registry == nil {
			return ErrNilRegistry
		}
		cfg.registry = registry
		return nil
	}
}

// WithLogger enables structured dispatch logging. Servers speaking stdio
// must hand in a logger writing to stderr; stdout belongs to the transport.
func WithLogger(logger *log.Logger) Option {
	return func(cfg *handlerConfig) error {
		if logger == nil {
			return ErrNilLogger
		}
		cfg.logger = logger
		return nil
	}
}

// WithServer allows injecting a custom server for testing
func WithServer(server *mcp.Server) Option {
	return func(cfg *handlerConfig) error {
		if server == nil {
			return ErrNilServer
		}
		cfg.server = server
		return nil
	}
}
