// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fluiddoc

package fluiddoc

import (
	"context"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/charmbracelet/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// mcpMaxResults caps results of one search_viewhelpers call.
const mcpMaxResults = 20

// SearchViewHelpersInput is the input of the search_viewhelpers tool.
type SearchViewHelpersInput struct {
	Query      string `json:"query" jsonschema:"Search terms matched against tag names, descriptions and argument names"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"Maximum number of results (optional, defaults to 10)"`
}

// SearchViewHelpersOutput is the output of the search_viewhelpers tool.
type SearchViewHelpersOutput struct {
	Query   string           `json:"query"`
	Results []SearchDocument `json:"results"`
}

// NewMCPServer exposes index as a search_viewhelpers tool.
// Serve it with server.Run(ctx, &mcp.StdioTransport{}).
func NewMCPServer(index bleve.Index, version string, logger *log.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "fluiddoc", Version: version}, nil)

	handler := &searchToolHandler{index: index, logger: orDiscard(logger)}
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "search_viewhelpers",
			Description: "Full-text search over generated ViewHelper reference pages. Returns tag, page path and anchor of each match.",
		},
		handler.search,
	)

	return server
}

type searchToolHandler struct {
	index  bleve.Index
	logger *log.Logger
}

func (h *searchToolHandler) search(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SearchViewHelpersInput,
) (*mcp.CallToolResult, SearchViewHelpersOutput, error) {
	output := SearchViewHelpersOutput{Query: input.Query, Results: []SearchDocument{}}
	if strings.TrimSpace(input.Query) == "" {
		return nil, output, nil
	}

	limit := input.MaxResults
	if limit <= 0 || limit > mcpMaxResults {
		limit = defaultSearchLimit
	}

	hits, err := Search(h.index, input.Query, limit)
	if err != nil {
		return nil, output, err
	}

	for _, hit := range hits {
		output.Results = append(output.Results, hit.Document)
	}

	h.logger.Debug("search_viewhelpers", "query", input.Query, "hits", len(hits))
	return nil, output, nil
}
