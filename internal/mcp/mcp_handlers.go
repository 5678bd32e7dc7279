package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/citescope/core"
	"github.com/huangsam/citescope/internal/contract"
	"github.com/huangsam/citescope/internal/loader"
	"github.com/huangsam/citescope/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// resolveOptions applies per-request column and separator overrides.
func (h *toolHandler) resolveOptions(request mcp.CallToolRequest) (column, separator string) {
	column = request.GetString("column", "")
	if column == "" {
		column = h.baseCfg.Column
	}
	if column == "" {
		column = contract.DefaultColumn
	}
	separator = request.GetString("separator", "")
	if separator == "" {
		separator = h.baseCfg.Separator
	}
	if separator == "" {
		separator = contract.DefaultSeparator
	}
	return column, separator
}

// loadRequestDatasets loads every dataset named in the comma-separated paths argument.
func (h *toolHandler) loadRequestDatasets(ctx context.Context, request mcp.CallToolRequest) ([]schema.Dataset, error) {
	raw := request.GetString("paths", "")
	var paths []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("paths is required")
	}

	column, separator := h.resolveOptions(request)
	ldr := loader.NewCSVLoader()
	datasets := make([]schema.Dataset, 0, len(paths))
	for _, path := range paths {
		ds, err := ldr.Load(ctx, path, column, separator)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		datasets = append(datasets, ds)
	}
	return datasets, nil
}

func (h *toolHandler) handleGetCitationMetrics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	datasets, err := h.loadRequestDatasets(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("dataset loading failed: %v", err)), nil
	}

	reports, err := core.GetMetricReports(datasets)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(reports, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetTopAuthors(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	datasets, err := h.loadRequestDatasets(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("dataset loading failed: %v", err)), nil
	}

	topN := request.GetInt("top", contract.DefaultTopN)
	if topN < 1 {
		return mcp.NewToolResultError("top must be at least 1"), nil
	}
	mode := schema.AggregationMode(request.GetString("agg", string(schema.CountAgg)))

	table, err := core.GetPresenceTable(datasets, topN, mode)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("aggregation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(table, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSimilarityMatrix(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	datasets, err := h.loadRequestDatasets(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("dataset loading failed: %v", err)), nil
	}

	matrix, err := core.GetSimilarityMatrix(datasets)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(matrix, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetLorenzThreshold(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := request.GetString("path", "")
	if path == "" {
		return mcp.NewToolResultError("path is required"), nil
	}
	target := request.GetFloat("target", 0)

	column, separator := h.resolveOptions(request)
	ds, err := loader.NewCSVLoader().Load(ctx, path, column, separator)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("dataset loading failed: %v", err)), nil
	}

	curve, err := core.GetLorenzCurve(ds)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("curve construction failed: %v", err)), nil
	}

	threshold, err := core.FindThresholdAuthorProportion(curve, target)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("threshold lookup failed: %v", err)), nil
	}

	result := struct {
		schema.LorenzCurve
		Target               float64 `json:"target"`
		ThresholdAuthorShare float64 `json:"threshold_author_share"`
	}{
		LorenzCurve:          curve,
		Target:               target,
		ThresholdAuthorShare: threshold,
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
