package mcpcore

import (
	"errors"
	"fmt"
)

// FailureKind categorizes a dispatch failure. Every Failure carries exactly
// one kind so transport adapters and clients can branch on it without parsing
// the message text.
type FailureKind string

const (
	// FailureUnknownTool means the requested tool name is not registered.
	FailureUnknownTool FailureKind = "unknown_tool"

	// FailureResourceNotFound means no literal or template resource matched
	// the requested URI.
	FailureResourceNotFound FailureKind = "resource_not_found"

	// FailureInvalidArguments means the arguments did not satisfy the tool's
	// input schema. The handler was not invoked.
	FailureInvalidArguments FailureKind = "invalid_arguments"

	// FailureHandlerError wraps any error or panic raised inside a handler.
	FailureHandlerError FailureKind = "handler_error"
)

// Failure is the structured error half of a Result. It is always reported
// back to the client; a failure never terminates the dispatch loop.
type Failure struct {
	Kind    FailureKind
	Message string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("[%s] %s", f.Kind, f.Message)
}

// MissingArgumentError reports a required schema parameter absent from the
// call arguments.
type MissingArgumentError struct {
	Param string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing required argument %q", e.Param)
}

// TypeMismatchError reports an argument whose runtime type does not match
// the declared parameter type.
type TypeMismatchError struct {
	Param    string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("argument %q: expected %s, got %s", e.Param, e.Expected, e.Actual)
}

// ToolError represents a domain error raised by a handler that should be
// returned to the client as part of the result rather than treated as a
// protocol error. This allows LLM clients to see the error and potentially
// retry or self-correct.
type ToolError struct {
	Message string
	Code    string // Optional error code for categorization
}

func (e *ToolError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return e.Message
}

// NewToolError creates a new tool error with the given message
func NewToolError(message string) *ToolError {
	return &ToolError{Message: message}
}

// NewToolErrorWithCode creates a new tool error with message and code
func NewToolErrorWithCode(message, code string) *ToolError {
	return &ToolError{Message: message, Code: code}
}

// Sentinel errors for registration and lookup
var (
	ErrEmptyName          = errors.New("name cannot be empty")
	ErrEmptyVersion       = errors.New("version cannot be empty")
	ErrEmptyToolName      = errors.New("tool name cannot be empty")
	ErrEmptyURIPattern    = errors.New("uri pattern cannot be empty")
	ErrNilHandler         = errors.New("handler cannot be nil")
	ErrNilServer          = errors.New("server cannot be nil")
	ErrNilRegistry        = errors.New("registry cannot be nil")
	ErrNilLogger          = errors.New("logger cannot be nil")
	ErrDuplicateTool      = errors.New("tool already registered")
	ErrDuplicateResource  = errors.New("resource already registered")
	ErrToolNotFound       = errors.New("tool not found")
	ErrResourceNotFound   = errors.New("resource not found")
	ErrInvalidParamType   = errors.New("invalid parameter type")
	ErrInvalidURITemplate = errors.New("invalid uri template")
)
