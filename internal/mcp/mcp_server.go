// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/citescope/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Citescope MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Citescope Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: get_citation_metrics ---
	s.AddTool(mcp.NewTool("get_citation_metrics",
		mcp.WithDescription("Compute diversity and concentration metrics (entropy, Gini, dominance, HHI, evenness) for one or more citation datasets."),
		mcp.WithString("paths", mcp.Description("Comma-separated CSV dataset paths."), mcp.Required()),
		mcp.WithString("column", mcp.Description("CSV column holding the author list. Defaults to 'authors'.")),
		mcp.WithString("separator", mcp.Description("Separator between authors within a cell. Defaults to ';'.")),
	), h.handleGetCitationMetrics)

	// --- 2. Tool: get_top_authors ---
	s.AddTool(mcp.NewTool("get_top_authors",
		mcp.WithDescription("Merge the top-N cited authors across datasets into a presence table of counts or ranks."),
		mcp.WithString("paths", mcp.Description("Comma-separated CSV dataset paths."), mcp.Required()),
		mcp.WithNumber("top", mcp.Description("Top-N authors per dataset. Defaults to 10.")),
		mcp.WithString("agg", mcp.Description("Aggregation mode (count or rank). Defaults to 'count'."), mcp.Enum("count", "rank")),
		mcp.WithString("column", mcp.Description("CSV column holding the author list.")),
		mcp.WithString("separator", mcp.Description("Separator between authors within a cell.")),
	), h.handleGetTopAuthors)

	// --- 3. Tool: get_similarity_matrix ---
	s.AddTool(mcp.NewTool("get_similarity_matrix",
		mcp.WithDescription("Compute the pairwise Jaccard similarity matrix over the distinct author sets of the datasets."),
		mcp.WithString("paths", mcp.Description("Comma-separated CSV dataset paths."), mcp.Required()),
		mcp.WithString("column", mcp.Description("CSV column holding the author list.")),
		mcp.WithString("separator", mcp.Description("Separator between authors within a cell.")),
	), h.handleGetSimilarityMatrix)

	// --- 4. Tool: get_lorenz_threshold ---
	s.AddTool(mcp.NewTool("get_lorenz_threshold",
		mcp.WithDescription("Build the Lorenz curve for one dataset and find the smallest author share reaching a target citation share."),
		mcp.WithString("path", mcp.Description("CSV dataset path."), mcp.Required()),
		mcp.WithNumber("target", mcp.Description("Target cumulative citation proportion in (0, 1]."), mcp.Required()),
		mcp.WithString("column", mcp.Description("CSV column holding the author list.")),
		mcp.WithString("separator", mcp.Description("Separator between authors within a cell.")),
	), h.handleGetLorenzThreshold)

	return s
}

// StartMCPServer starts the Citescope MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
