// Package mcpcore provides a generic tool/resource dispatch core for MCP-style
// protocol servers: a registry of tool and resource definitions, URI template
// matching, input schema validation, and a dispatcher that routes decoded
// requests to handlers and wraps outcomes as structured results.
package mcpcore

import "fmt"

// Parameter and argument type tags. This is a closed set: a schema declaring
// any other type is rejected at registration time.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
	TypeNull    = "null"
)

// Content block type tags.
const (
	ContentText = "text"
	ContentJSON = "json"
)

// Content is one block of a successful result. Type selects which value
// field is populated. MIMEType is set on resource reads, from the matched
// resource definition.
type Content struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	JSON     any    `json:"json,omitempty"`
	MIMEType string `json:"mimeType,omitempty"`
}

// TextContent builds a text content block.
func TextContent(text string) Content {
	return Content{Type: ContentText, Text: text}
}

// JSONContent builds a structured content block.
func JSONContent(v any) Content {
	return Content{Type: ContentJSON, JSON: v}
}

func validParamType(t string) bool {
	switch t {
	case TypeString, TypeNumber, TypeBoolean, TypeArray, TypeObject:
		return true
	}
	return false
}

// kindOf classifies a decoded JSON value into the closed type-tag set using a
// type switch. Arguments arrive as the output of encoding/json, so only the
// standard decoded shapes (plus the common Go numeric kinds handlers build by
// hand) are recognized; anything else is reported by its Go type, which a
// declared type never matches.
func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return TypeNull
	case string:
		return TypeString
	case bool:
		return TypeBoolean
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return TypeNumber
	case []any:
		return TypeArray
	case map[string]any:
		return TypeObject
	default:
		return fmt.Sprintf("%T", v)
	}
}
