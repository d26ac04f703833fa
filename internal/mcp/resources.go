// resources.go implements MCP resource handlers for schemas and guides.
//
// Resources give clients read-only context without a tool call: the JSON
// schema of every tool result, so an agent can plan around the shape of a
// report before fetching one, and the guide pages.
//
// URIs follow chtools://schemas/{name} and chtools://guide/{topic}.

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/jpl-au/chtools/guide"
	"github.com/jpl-au/chtools/internal/companieshouse"
	"github.com/jpl-au/chtools/internal/report"
	"github.com/jpl-au/chtools/internal/service"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	schemaPrefix = "chtools://schemas/"
	guidePrefix  = "chtools://guide/"
)

var (
	// ErrInvalidURI indicates a malformed resource URI.
	ErrInvalidURI = errors.New("invalid URI")
	// ErrUnknownSchema indicates a schema name with no registered type.
	ErrUnknownSchema = errors.New("unknown schema")
)

// schemaTypes maps a schema name to a zero value of the result it describes.
var schemaTypes = map[string]any{
	"search_result":                    companieshouse.SearchResult{},
	"profile":                          companieshouse.Profile{},
	"officers":                         companieshouse.OfficerList{},
	"filing_history":                   companieshouse.FilingHistory{},
	"charges":                          companieshouse.ChargeList{},
	"insolvency":                       companieshouse.Insolvency{},
	"persons_with_significant_control": companieshouse.PSCList{},
	"address":                          companieshouse.Address{},
	"report":                           report.Report{},
	"error":                            service.ErrorBody{},
}

// SchemaNames returns the registered schema names, sorted.
func SchemaNames() []string {
	names := make([]string, 0, len(schemaTypes))
	for n := range schemaTypes {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Schema returns the JSON schema for a named result type.
func Schema(name string) ([]byte, error) {
	v, ok := schemaTypes[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (valid: %s)", ErrUnknownSchema, name, strings.Join(SchemaNames(), ", "))
	}
	r := &jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	return json.MarshalIndent(r.Reflect(v), "", "  ")
}

func registerResources(s *server.MCPServer) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			schemaPrefix+"{name}",
			"Result schema",
			mcp.WithTemplateDescription("JSON schema of a tool result. Names: "+strings.Join(SchemaNames(), ", ")),
			mcp.WithTemplateMIMEType("application/schema+json"),
		),
		readSchemaResource,
	)
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			guidePrefix+"{topic}",
			"Guide",
			mcp.WithTemplateDescription("chtools guide page. Use 'guide' for the overview."),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		readGuideResource,
	)
}

func readSchemaResource(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	name, err := parseResourceURI(uri, schemaPrefix)
	if err != nil {
		return nil, err
	}
	data, err := Schema(name)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/schema+json",
			Text:     string(data),
		},
	}, nil
}

func readGuideResource(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	topic, err := parseResourceURI(uri, guidePrefix)
	if err != nil {
		return nil, err
	}
	content, err := guide.Get(topic)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     content,
		},
	}, nil
}

// parseResourceURI returns the single path segment following prefix.
func parseResourceURI(uri, prefix string) (string, error) {
	rest, ok := strings.CutPrefix(uri, prefix)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	if rest == "" || strings.Contains(rest, "/") {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	return rest, nil
}
