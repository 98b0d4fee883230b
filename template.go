package mcpcore

import (
	"fmt"
	"strings"

	"github.com/yosida95/uritemplate/v3"
)

// segment is one piece of a parsed URI pattern: either a literal that must
// match byte-for-byte, or a placeholder that binds one non-empty segment.
type segment struct {
	literal string
	varName string // non-empty for placeholder segments
}

// uriTemplate is a parsed resource URI pattern. Patterns split on the scheme
// separator "://" and then on "/"; a placeholder occupies a whole segment and
// never matches across a "/" boundary.
type uriTemplate struct {
	raw      string
	segments []segment
	varNames []string
}

// isTemplatePattern reports whether pattern contains at least one
// placeholder. Patterns without placeholders are literal resources.
func isTemplatePattern(pattern string) bool {
	return strings.Contains(pattern, "{")
}

// splitURI breaks a URI into matchable segments. The scheme (everything
// before "://") becomes its own leading segment so "notes://note/2" and
// "notes://note/{id}" line up segment-for-segment.
func splitURI(uri string) []string {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return strings.Split(uri, "/")
	}
	return append([]string{scheme}, strings.Split(rest, "/")...)
}

// parseURITemplate validates and parses a template pattern. RFC 6570 syntax
// errors are caught by the uritemplate library; on top of that, placeholders
// must span a whole segment, be uniquely named, and appear at least once.
func parseURITemplate(pattern string) (*uriTemplate, error) {
	if _, err := uritemplate.New(pattern); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidURITemplate, pattern, err)
	}

	t := &uriTemplate{raw: pattern}
	seen := make(map[string]struct{})

	for _, seg := range splitURI(pattern) {
		if !strings.ContainsAny(seg, "{}") {
			t.segments = append(t.segments, segment{literal: seg})
			continue
		}
		name, ok := placeholderName(seg)
		if !ok {
			return nil, fmt.Errorf("%w: %q: placeholder must span a whole segment", ErrInvalidURITemplate, pattern)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q: placeholder %q appears twice", ErrInvalidURITemplate, pattern, name)
		}
		seen[name] = struct{}{}
		t.segments = append(t.segments, segment{varName: name})
		t.varNames = append(t.varNames, name)
	}

	if len(t.varNames) == 0 {
		return nil, fmt.Errorf("%w: %q: no placeholders", ErrInvalidURITemplate, pattern)
	}
	return t, nil
}

// placeholderName extracts the variable name from a segment of the exact
// form "{name}".
func placeholderName(seg string) (string, bool) {
	if len(seg) < 3 || seg[0] != '{' || seg[len(seg)-1] != '}' {
		return "", false
	}
	name := seg[1 : len(seg)-1]
	if name == "" || strings.ContainsAny(name, "{}") {
		return "", false
	}
	return name, true
}

// match tests a concrete URI against the template. Segment counts must
// agree, literal segments must be byte-identical, and each placeholder binds
// exactly one non-empty segment verbatim (no decoding).
func (t *uriTemplate) match(uri string) (map[string]string, bool) {
	parts := splitURI(uri)
	if len(parts) != len(t.segments) {
		return nil, false
	}

	bindings := make(map[string]string, len(t.varNames))
	for i, seg := range t.segments {
		if seg.varName == "" {
			if parts[i] != seg.literal {
				return nil, false
			}
			continue
		}
		if parts[i] == "" {
			return nil, false
		}
		bindings[seg.varName] = parts[i]
	}
	return bindings, true
}
