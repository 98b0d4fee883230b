package mcpcore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/phuslu/log"
)

// Request is a decoded protocol request handed to the dispatcher by a
// transport adapter. It is either a ToolCallRequest or a
// ResourceReadRequest.
type Request interface {
	isRequest()
}

// ToolCallRequest asks for a registered tool to be invoked with the given
// arguments.
type ToolCallRequest struct {
	Name      string
	Arguments map[string]any
}

func (ToolCallRequest) isRequest() {}

// ResourceReadRequest asks for the content of a resource URI.
type ResourceReadRequest struct {
	URI string
}

func (ResourceReadRequest) isRequest() {}

// Result is the outcome of one dispatch: content blocks on success, or a
// structured Failure. Exactly one of the two is set.
type Result struct {
	Content []Content
	Failure *Failure
}

// IsError reports whether the dispatch failed.
func (r Result) IsError() bool {
	return r.Failure != nil
}

// Dispatcher translates Requests into Results: registry lookup, argument
// validation, handler invocation, and failure wrapping. It holds no per-call
// state and is safe for concurrent use; each call is an independent
// transaction.
type Dispatcher struct {
	registry *Registry
	logger   *log.Logger // nil disables logging
}

// NewDispatcher creates a dispatcher over the given registry. A nil logger
// keeps the dispatcher silent.
func NewDispatcher(registry *Registry, logger *log.Logger) (*Dispatcher, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}
	return &Dispatcher{registry: registry, logger: logger}, nil
}

// Registry returns the registry backing this dispatcher.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Dispatch routes one request to its handler and wraps the outcome. Failures
// are always returned inside the Result; Dispatch never panics and never
// lets a handler failure escape.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) Result {
	switch r := req.(type) {
	case ToolCallRequest:
		return d.CallTool(ctx, r.Name, r.Arguments)
	case ResourceReadRequest:
		return d.ReadResource(ctx, r.URI)
	default:
		return failure(FailureHandlerError, fmt.Sprintf("unsupported request type %T", req))
	}
}

// CallTool looks up, validates, and invokes a tool.
func (d *Dispatcher) CallTool(ctx context.Context, name string, args map[string]any) Result {
	requestID := uuid.NewString()

	def, err := d.registry.Tool(name)
	if err != nil {
		return d.fail(requestID, FailureUnknownTool, err.Error())
	}

	validated, err := validateArgs(def.InputSchema, args)
	if err != nil {
		return d.fail(requestID, FailureInvalidArguments, err.Error())
	}

	content, err := invokeTool(ctx, def.Handler, validated)
	if err != nil {
		return d.fail(requestID, FailureHandlerError, err.Error())
	}

	if d.logger != nil {
		d.logger.Debug().
			Str("request_id", requestID).
			Str("tool", name).
			Int("blocks", len(content)).
			Msg("tool call succeeded")
	}
	return Result{Content: content}
}

// ReadResource resolves a URI and invokes the matched resource handler. The
// returned content carries the definition's MIME type.
func (d *Dispatcher) ReadResource(ctx context.Context, uri string) Result {
	requestID := uuid.NewString()

	def, bindings, err := d.registry.ResolveResource(uri)
	if err != nil {
		return d.fail(requestID, FailureResourceNotFound, err.Error())
	}

	body, err := invokeResource(ctx, def.Handler, bindings)
	if err != nil {
		return d.fail(requestID, FailureHandlerError, err.Error())
	}

	if d.logger != nil {
		d.logger.Debug().
			Str("request_id", requestID).
			Str("uri", uri).
			Str("pattern", def.URIPattern).
			Msg("resource read succeeded")
	}
	return Result{Content: []Content{{
		Type:     ContentText,
		Text:     body,
		MIMEType: def.MIMEType,
	}}}
}

// invokeTool runs a tool handler with panic recovery. A panicking handler
// must not take the server down; it surfaces as a handler error instead.
func invokeTool(ctx context.Context, h ToolHandler, args map[string]any) (content []Content, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return h(ctx, args)
}

func invokeResource(ctx context.Context, h ResourceHandler, bindings map[string]string) (body string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return h(ctx, bindings)
}

func failure(kind FailureKind, message string) Result {
	return Result{Failure: &Failure{Kind: kind, Message: message}}
}

func (d *Dispatcher) fail(requestID string, kind FailureKind, message string) Result {
	if d.logger != nil {
		d.logger.Warn().
			Str("request_id", requestID).
			Str("kind", string(kind)).
			Str("error", message).
			Msg("dispatch failed")
	}
	return failure(kind, message)
}
