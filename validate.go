package mcpcore

// validateArgs checks the argument map against a tool's input schema and
// returns the map handed to the handler: a copy of args with defaults filled
// in for absent optional parameters. Keys not declared in the schema pass
// through unvalidated. The input map is never mutated.
//
// Errors are *MissingArgumentError or *TypeMismatchError; on error no map is
// returned and the handler must not be invoked.
func validateArgs(schema InputSchema, args map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(args)+len(schema))
	for k, v := range args {
		out[k] = v
	}

	for _, p := range schema {
		v, present := args[p.Name]
		if !present {
			if p.Required {
				return nil, &MissingArgumentError{Param: p.Name}
			}
			if p.Default != nil {
				out[p.Name] = p.Default
			}
			continue
		}
		if p.Type == "" {
			continue
		}
		if actual := kindOf(v); actual != p.Type {
			return nil, &TypeMismatchError{Param: p.Name, Expected: p.Type, Actual: actual}
		}
	}
	return out, nil
}
