package mcpcore

import (
	"context"
	"fmt"
	"sync"
)

// ToolHandler performs the work behind a tool. It receives the validated
// argument map (defaults applied, unknown keys passed through) and returns
// content blocks or a domain error.
type ToolHandler func(ctx context.Context, args map[string]any) ([]Content, error)

// ResourceHandler produces the body of a resource. Bindings hold placeholder
// values extracted from the URI; it is empty for literal resources.
type ResourceHandler func(ctx context.Context, bindings map[string]string) (string, error)

// ToolDef declares a tool: a named, schema-validated invocable action.
type ToolDef struct {
	Name        string
	Description string
	InputSchema InputSchema
	Handler     ToolHandler
}

// ResourceDef declares a resource: a URI-addressed read-only data source.
// URIPattern is either fully literal (a static resource) or contains
// {placeholder} segments (a template resource).
type ResourceDef struct {
	URIPattern  string
	Name        string
	Description string
	MIMEType    string
	Handler     ResourceHandler
}

// IsTemplate reports whether the definition is a template resource.
func (d ResourceDef) IsTemplate() bool {
	return isTemplatePattern(d.URIPattern)
}

type templateEntry struct {
	def  ResourceDef
	tmpl *uriTemplate
}

// Registry stores tool and resource definitions in registration order.
// Reads and writes are guarded by a reader-writer lock so concurrent
// dispatch never observes a partially updated registry.
type Registry struct {
	mu        sync.RWMutex
	tools     []ToolDef
	toolIndex map[string]int
	literals  []ResourceDef
	litIndex  map[string]int
	templates []templateEntry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		toolIndex: make(map[string]int),
		litIndex:  make(map[string]int),
	}
}

// RegisterTool adds a tool definition. The name must be unique and the input
// schema well-formed.
func (r *Registry) RegisterTool(def ToolDef) error {
	if def.Name == "" {
		return ErrEmptyToolName
	}
	if def.Handler == nil {
		return fmt.Errorf("tool %q: %w", def.Name, ErrNilHandler)
	}
	if err := def.InputSchema.validate(); err != nil {
		return fmt.Errorf("tool %q: %w", def.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.toolIndex[def.Name]; exists {
		return fmt.Errorf("tool %q: %w", def.Name, ErrDuplicateTool)
	}
	r.toolIndex[def.Name] = len(r.tools)
	r.tools = append(r.tools, def)
	return nil
}

// RegisterResource adds a resource definition. Literal patterns must be
// globally unique; template patterns are appended to an ordered sequence,
// and that order is significant for matching.
func (r *Registry) RegisterResource(def ResourceDef) error {
	if def.URIPattern == "" {
		return ErrEmptyURIPattern
	}
	if def.Handler == nil {
		return fmt.Errorf("resource %q: %w", def.URIPattern, ErrNilHandler)
	}

	if !def.IsTemplate() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if _, exists := r.litIndex[def.URIPattern]; exists {
			return fmt.Errorf("resource %q: %w", def.URIPattern, ErrDuplicateResource)
		}
		r.litIndex[def.URIPattern] = len(r.literals)
		r.literals = append(r.literals, def)
		return nil
	}

	tmpl, err := parseURITemplate(def.URIPattern)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.templates {
		if e.def.URIPattern == def.URIPattern {
			return fmt.Errorf("resource %q: %w", def.URIPattern, ErrDuplicateResource)
		}
	}
	r.templates = append(r.templates, templateEntry{def: def, tmpl: tmpl})
	return nil
}

// RemoveTool unregisters a tool by name.
func (r *Registry) RemoveTool(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, exists := r.toolIndex[name]
	if !exists {
		return fmt.Errorf("tool %q: %w", name, ErrToolNotFound)
	}
	r.tools = append(r.tools[:i], r.tools[i+1:]...)
	delete(r.toolIndex, name)
	for n, j := range r.toolIndex {
		if j > i {
			r.toolIndex[n] = j - 1
		}
	}
	return nil
}

// RemoveResource unregisters a resource by its exact pattern, literal or
// template.
func (r *Registry) RemoveResource(pattern string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i, exists := r.litIndex[pattern]; exists {
		r.literals = append(r.literals[:i], r.literals[i+1:]...)
		delete(r.litIndex, pattern)
		for p, j := range r.litIndex {
			if j > i {
				r.litIndex[p] = j - 1
			}
		}
		return nil
	}
	for i, e := range r.templates {
		if e.def.URIPattern == pattern {
			r.templates = append(r.templates[:i], r.templates[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("resource %q: %w", pattern, ErrResourceNotFound)
}

// Tool returns the definition registered under name.
func (r *Registry) Tool(name string) (ToolDef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, exists := r.toolIndex[name]
	if !exists {
		return ToolDef{}, fmt.Errorf("tool %q: %w", name, ErrToolNotFound)
	}
	return r.tools[i], nil
}

// Tools returns all tool definitions in registration order.
func (r *Registry) Tools() []ToolDef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ToolDef, len(r.tools))
	copy(out, r.tools)
	return out
}

// Resources returns the literal (static) resource definitions in
// registration order.
func (r *Registry) Resources() []ResourceDef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ResourceDef, len(r.literals))
	copy(out, r.literals)
	return out
}

// ResourceTemplates returns the template resource definitions in
// registration order. Discovery responses report these separately from
// static resources.
func (r *Registry) ResourceTemplates() []ResourceDef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ResourceDef, 0, len(r.templates))
	for _, e := range r.templates {
		out = append(out, e.def)
	}
	return out
}

// ResolveResource maps a concrete URI to a registered definition plus any
// extracted placeholder bindings. Literal patterns are checked first by
// exact string equality; templates are then scanned in registration order
// and the first match wins.
func (r *Registry) ResolveResource(uri string) (ResourceDef, map[string]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i, exists := r.litIndex[uri]; exists {
		return r.literals[i], map[string]string{}, nil
	}
	for _, e := range r.templates {
		if bindings, ok := e.tmpl.match(uri); ok {
			return e.def, bindings, nil
		}
	}
	return ResourceDef{}, nil, fmt.Errorf("%q: %w", uri, ErrResourceNotFound)
}
