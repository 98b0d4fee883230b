package mcpcore

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// addSDKResource registers one literal resource on the SDK server.
func addSDKResource(server *mcp.Server, d *Dispatcher, def ResourceDef) {
	resource := &mcp.Resource{
		URI:         def.URIPattern,
		Name:        def.Name,
		Description: def.Description,
		MIMEType:    def.MIMEType,
	}
	server.AddResource(resource, sdkResourceHandler(d))
}

// addSDKResourceTemplate registers one template resource. The SDK reports it
// under resources/templates/list; reads still route through the dispatcher,
// whose matcher owns the binding semantics.
func addSDKResourceTemplate(server *mcp.Server, d *Dispatcher, def ResourceDef) {
	template := &mcp.ResourceTemplate{
		URITemplate: def.URIPattern,
		Name:        def.Name,
		Description: def.Description,
		MIMEType:    def.MIMEType,
	}
	server.AddResourceTemplate(template, sdkResourceHandler(d))
}

// sdkResourceHandler adapts the SDK's resource read signature to a dispatch
// call. Resource reads have no in-band error channel on the wire, so a
// dispatch failure is returned as the error; the SDK maps it to a protocol
// error response and keeps serving.
func sdkResourceHandler(d *Dispatcher) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		uri := req.Params.URI
		res := d.ReadResource(ctx, uri)
		if res.Failure != nil {
			return nil, res.Failure
		}

		contents := make([]*mcp.ResourceContents, 0, len(res.Content))
		for _, c := range res.Content {
			contents = append(contents, &mcp.ResourceContents{
				URI:      uri,
				MIMEType: c.MIMEType,
				Text:     c.Text,
			})
		}
		return &mcp.ReadResourceResult{Contents: contents}, nil
	}
}
