// Package mcp exposes surname clustering and lookup as Model Context
// Protocol tools over stdio.
package mcp

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/standardbeagle/thar/internal/cluster"
	"github.com/standardbeagle/thar/internal/config"
	thardebug "github.com/standardbeagle/thar/internal/debug"
	"github.com/standardbeagle/thar/internal/guess"
	"github.com/standardbeagle/thar/internal/taxonomy"
	"github.com/standardbeagle/thar/internal/version"
)

type toolHandler func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error)

// Server wraps the MCP server and the clustering engine its tools share.
type Server struct {
	server    *mcp.Server
	cfg       *config.Config
	tax       *taxonomy.Taxonomy
	engine    *cluster.Engine
	guesser   *guess.Guesser
	handlers  map[string]toolHandler
	toolOrder []string
}

// NewServer creates the server and registers its tools. A nil cfg uses the
// defaults; a nil tax uses the built-in taxonomy.
func NewServer(cfg *config.Config, tax *taxonomy.Taxonomy) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if tax == nil {
		tax = taxonomy.Default()
	}

	s := &Server{
		cfg:      cfg,
		tax:      tax,
		engine:   cluster.NewEngine(tax),
		guesser:  guess.New(tax),
		handlers: make(map[string]toolHandler),
	}

	s.server = mcp.NewServer(&mcp.Implementation{
		Name:    "thar-mcp-server",
		Version: version.Version,
	}, nil)

	s.registerTools()
	thardebug.LogMCP("registered %d tools (build %s)\n", len(s.handlers), version.BuildID())
	return s, nil
}

func (s *Server) addTool(tool *mcp.Tool, handler toolHandler) {
	name := tool.Name
	wrapped := func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return s.recoverFromPanic(name, func() (*mcp.CallToolResult, error) {
			return handler(ctx, req)
		})
	}
	s.handlers[name] = wrapped
	s.toolOrder = append(s.toolOrder, name)
	s.server.AddTool(tool, wrapped)
}

func (s *Server) registerTools() {
	s.addTool(&mcp.Tool{
		Name:        "cluster_surnames",
		Description: "Group romanized spelling variants of Nepali surnames (Sharma, Sharmaa, Shrma) into clusters, pick a canonical spelling for each and classify it into the ethnic taxonomy with a Devanagari rendering and a confidence level.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"surnames": {
					Type:        "array",
					Description: "Raw surname strings, any case, duplicates allowed",
					Items:       &jsonschema.Schema{Type: "string"},
				},
				"threshold": {
					Type:        "number",
					Description: fmt.Sprintf("Similarity threshold 0-100 for joining a cluster (default %.0f)", cluster.DefaultThreshold),
				},
				"format": {
					Type:        "string",
					Description: "Result format: json (default) or csv",
					Enum:        []any{"json", "csv"},
				},
			},
			Required: []string{"surnames"},
		},
	}, s.handleClusterSurnames)

	s.addTool(&mcp.Tool{
		Name:        "find_surname",
		Description: "Look up one surname in the reference taxonomy. Tolerates common spelling variants (ee/i, y/i, aa/a, oo/u).",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"surname": {
					Type:        "string",
					Description: "Romanized surname, e.g. Shrestha",
				},
			},
			Required: []string{"surname"},
		},
	}, s.handleFindSurname)

	s.addTool(&mcp.Tool{
		Name:        "guess_surname",
		Description: "Guess the Devanagari spelling and ethnic category of a surname. Known surnames come from the taxonomy; unknown ones are transliterated and matched against category patterns.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"surname": {
					Type:        "string",
					Description: "Romanized surname",
				},
			},
			Required: []string{"surname"},
		},
	}, s.handleGuessSurname)

	s.addTool(&mcp.Tool{
		Name:        "list_categories",
		Description: "List the main ethnic categories and their sub-categories.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"main_id": {
					Type:        "integer",
					Description: "Only list this main category (1-7)",
				},
			},
		},
	}, s.handleListCategories)
}

// recoverFromPanic turns a handler panic into an error result
func (s *Server) recoverFromPanic(operation string, handler func() (*mcp.CallToolResult, error)) (result *mcp.CallToolResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			thardebug.LogMCP("PANIC RECOVERED in %s: %v\n%s\n", operation, r, debug.Stack())
			result, err = createErrorResponse(operation, fmt.Errorf("internal error: %v", r))
		}
	}()

	return handler()
}

// Tools lists the registered tool names in registration order.
func (s *Server) Tools() []string {
	return append([]string(nil), s.toolOrder...)
}

// Start serves MCP over stdio until ctx is done or the client disconnects.
func (s *Server) Start(ctx context.Context) error {
	thardebug.LogMCP("starting MCP server with stdio transport, tools: %s\n", strings.Join(s.Tools(), ", "))
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
