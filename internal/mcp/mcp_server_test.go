package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/citescope/internal/contract"
	mcp_internal "github.com/huangsam/citescope/internal/mcp"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDataset writes a CSV fixture and returns its path.
func writeDataset(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestServerConfig() *contract.Config {
	return &contract.Config{
		Column:    "authors",
		Separator: ";",
	}
}

func TestMCPServerHandlers(t *testing.T) {
	s := mcp_internal.NewMCPServer(newTestServerConfig())
	ctx := context.Background()
	dir := t.TempDir()

	ds1 := writeDataset(t, dir, "ds1.csv", "title,authors\nP1,A;A;B\nP2,C\n")
	ds2 := writeDataset(t, dir, "ds2.csv", "title,authors\nP1,A;D\n")

	t.Run("get_citation_metrics", func(t *testing.T) {
		tool := s.GetTool("get_citation_metrics")
		require.NotNil(t, tool, "Tool get_citation_metrics should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_citation_metrics",
				Arguments: map[string]any{
					"paths": ds1,
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		var reports []map[string]any
		text := res.Content[0].(mcp.TextContent).Text
		require.NoError(t, json.Unmarshal([]byte(text), &reports))
		require.Len(t, reports, 1)
		assert.Equal(t, "ds1", reports[0]["label"])
		assert.Equal(t, float64(4), reports[0]["total_citations"])
		assert.Equal(t, float64(3), reports[0]["unique_authors"])
	})

	t.Run("get_top_authors", func(t *testing.T) {
		tool := s.GetTool("get_top_authors")
		require.NotNil(t, tool, "Tool get_top_authors should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_top_authors",
				Arguments: map[string]any{
					"paths": ds1 + "," + ds2,
					"top":   2.0,
					"agg":   "count",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		var table map[string]any
		text := res.Content[0].(mcp.TextContent).Text
		require.NoError(t, json.Unmarshal([]byte(text), &table))
		assert.Equal(t, "count", table["mode"])
		assert.Len(t, table["labels"], 2)
	})

	t.Run("get_similarity_matrix", func(t *testing.T) {
		tool := s.GetTool("get_similarity_matrix")
		require.NotNil(t, tool, "Tool get_similarity_matrix should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_similarity_matrix",
				Arguments: map[string]any{
					"paths": ds1 + "," + ds2,
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		var matrix map[string]any
		text := res.Content[0].(mcp.TextContent).Text
		require.NoError(t, json.Unmarshal([]byte(text), &matrix))
		scores := matrix["scores"].(map[string]any)
		ds1Row := scores["ds1"].(map[string]any)
		assert.Equal(t, float64(1), ds1Row["ds1"])
		// {A,B,C} vs {A,D}: intersection 1, union 4
		assert.InDelta(t, 0.25, ds1Row["ds2"], 0.0001)
	})

	t.Run("get_lorenz_threshold", func(t *testing.T) {
		tool := s.GetTool("get_lorenz_threshold")
		require.NotNil(t, tool, "Tool get_lorenz_threshold should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_lorenz_threshold",
				Arguments: map[string]any{
					"path":   ds1,
					"target": 0.5,
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		var result map[string]any
		text := res.Content[0].(mcp.TextContent).Text
		require.NoError(t, json.Unmarshal([]byte(text), &result))
		assert.Equal(t, 0.5, result["target"])
		// A holds 2 of 4 citations, so the first author reaches the target
		assert.InDelta(t, 1.0/3, result["threshold_author_share"], 0.0001)
	})
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	s := mcp_internal.NewMCPServer(newTestServerConfig())
	ctx := context.Background()

	t.Run("get_citation_metrics missing paths", func(t *testing.T) {
		tool := s.GetTool("get_citation_metrics")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_citation_metrics",
				Arguments: map[string]any{"paths": ""},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "paths is required")
	})

	t.Run("get_top_authors invalid agg", func(t *testing.T) {
		tool := s.GetTool("get_top_authors")
		require.NotNil(t, tool)

		dir := t.TempDir()
		ds := writeDataset(t, dir, "ds.csv", "title,authors\nP1,A\n")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_top_authors",
				Arguments: map[string]any{
					"paths": ds,
					"agg":   "weighted",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "aggregation")
	})

	t.Run("get_lorenz_threshold invalid target", func(t *testing.T) {
		tool := s.GetTool("get_lorenz_threshold")
		require.NotNil(t, tool)

		dir := t.TempDir()
		ds := writeDataset(t, dir, "ds.csv", "title,authors\nP1,A\n")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_lorenz_threshold",
				Arguments: map[string]any{
					"path":   ds,
					"target": 1.5,
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "threshold lookup failed")
	})
}
